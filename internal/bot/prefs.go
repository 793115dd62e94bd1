package bot

import "sync"

// GuildPrefs is the per-guild default currency store. In-memory only, so
// settings reset on restart.
type GuildPrefs struct {
	mu       sync.RWMutex
	defaults map[string]string
}

func NewGuildPrefs() *GuildPrefs {
	return &GuildPrefs{defaults: make(map[string]string)}
}

// Get returns the default currency code for a guild, or "" if none is set.
func (p *GuildPrefs) Get(guildID string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.defaults[guildID]
}

// Set stores the default currency code for a guild. The code is expected
// to be uppercased and registry-validated by the caller.
func (p *GuildPrefs) Set(guildID, code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaults[guildID] = code
}
