package currency

// Registry holds the set of currency codes the provider supports.
// It is filled lazily: the dispatcher calls EnsureLoaded on every message
// until a fetch succeeds, and a failed fetch leaves the set empty so the
// next message simply tries again.

import (
	"context"
	"strings"
	"sync"

	"currency-bot/internal/infra/log"

	"go.uber.org/zap"
)

// Provider is the slice of the rate API the registry needs.
type Provider interface {
	Currencies(ctx context.Context) (map[string]string, error)
}

type Registry struct {
	mu        sync.RWMutex
	provider  Provider
	supported map[string]struct{}
}

func NewRegistry(provider Provider) *Registry {
	return &Registry{
		provider:  provider,
		supported: make(map[string]struct{}),
	}
}

// EnsureLoaded fetches the supported set if it is still empty. The mutex
// is held across the fetch so concurrently handled messages cannot kick
// off redundant provider calls; once the set is non-empty this is a
// cheap map-length check.
func (r *Registry) EnsureLoaded(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.supported) > 0 {
		return
	}

	currencies, err := r.provider.Currencies(ctx)
	if err != nil {
		log.LogWarn("Failed to fetch supported currencies", zap.Error(err))
		return
	}

	for code := range currencies {
		r.supported[strings.ToUpper(code)] = struct{}{}
	}

	log.LogInfo("Supported currencies loaded", zap.Int("count", len(r.supported)))
}

// IsSupported reports whether code is in the loaded set. Codes are stored
// uppercased; the caller is expected to uppercase before asking.
func (r *Registry) IsSupported(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.supported[code]
	return ok
}

// Loaded reports whether the supported set has been populated.
func (r *Registry) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.supported) > 0
}
