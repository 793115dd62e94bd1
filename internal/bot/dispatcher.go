package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"currency-bot/internal/clients_api/frankfurter"
	"currency-bot/internal/features/charts"
	"currency-bot/internal/features/currency"
	"currency-bot/internal/features/mentions"
	"currency-bot/internal/infra/log"

	"go.uber.org/zap"
)

// RateAPI is the slice of the provider client the dispatcher needs.
type RateAPI interface {
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)
	History(ctx context.Context, currency, rangeCode string) (*frankfurter.HistoryResponse, error)
}

// Message is a platform-agnostic inbound message. IsAdmin is resolved
// lazily because the permission lookup can itself hit the platform API.
type Message struct {
	Content  string
	GuildID  string
	AuthorID string
	IsAdmin  func() bool
}

// Replier sends responses back to the originating channel.
type Replier interface {
	Reply(text string) error
	ReplyFile(name string, data []byte) error
}

// Dispatcher routes one inbound message to a command handler or the
// passive mention scan. It holds no per-message state; one instance
// serves the whole session.
type Dispatcher struct {
	Prefix       string
	SuperAdminID string
	Registry     *currency.Registry
	Prefs        *GuildPrefs
	Rates        RateAPI
}

// HandleMessage runs the full per-message pipeline. The prefix slice is
// taken unconditionally before command matching, so a message that never
// carried the prefix just produces a command token nothing matches and
// falls through to the mention scan over the original content.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg Message, replier Replier) {
	d.Registry.EnsureLoaded(ctx)

	body := strings.TrimSpace(msg.Content)
	if len(body) >= len(d.Prefix) {
		body = body[len(d.Prefix):]
	}
	args := strings.Fields(body)

	command := ""
	if len(args) > 0 {
		command = strings.ToLower(args[0])
	}

	switch command {
	case "servercurrency":
		d.handleServerCurrency(msg, args[1:], replier)
	case "ex":
		d.handleExchange(ctx, args[1:], replier)
	case "rate":
		d.handleRate(ctx, args[1:], replier)
	default:
		d.handleMentions(ctx, msg, replier)
	}
}

func (d *Dispatcher) handleServerCurrency(msg Message, args []string, replier Replier) {
	if msg.AuthorID != d.SuperAdminID && !msg.IsAdmin() {
		d.reply(replier, "You don't have permission to do that.")
		return
	}

	code := ""
	if len(args) > 0 {
		code = strings.ToUpper(args[0])
	}
	if code == "" || !d.Registry.IsSupported(code) {
		d.reply(replier, "Invalid currency code.")
		return
	}

	d.Prefs.Set(msg.GuildID, code)
	log.LogInfo("Guild default currency updated",
		zap.String("guild_id", msg.GuildID), zap.String("currency", code))
	d.reply(replier, "Set default currency to "+code)
}

func (d *Dispatcher) handleExchange(ctx context.Context, args []string, replier Replier) {
	from, to := "", ""
	if len(args) > 0 {
		from = strings.ToUpper(args[0])
	}
	if len(args) > 1 {
		to = strings.ToUpper(args[1])
	}

	// A missing, unparsable or zero amount means 1.
	amount := 1.0
	if len(args) > 2 {
		if parsed, err := strconv.ParseFloat(args[2], 64); err == nil && parsed != 0 {
			amount = parsed
		}
	}

	if !d.Registry.IsSupported(from) || !d.Registry.IsSupported(to) {
		d.reply(replier, "Invalid currency code.")
		return
	}

	result, err := d.Rates.Convert(ctx, from, to, amount)
	if err != nil {
		log.LogError("Conversion request failed",
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		d.reply(replier, "Conversion failed. Please try again.")
		return
	}

	d.reply(replier, fmt.Sprintf("%v %s = %.2f %s", amount, from, result, to))
}

func (d *Dispatcher) handleRate(ctx context.Context, args []string, replier Replier) {
	cur := ""
	if len(args) > 0 {
		cur = strings.ToUpper(args[0])
	}
	rangeCode := "m"
	if len(args) > 1 {
		rangeCode = args[1]
	}

	if !d.Registry.IsSupported(cur) {
		d.reply(replier, "Invalid currency.")
		return
	}

	series, err := d.Rates.History(ctx, cur, rangeCode)
	if err != nil {
		log.LogError("History fetch failed",
			zap.String("currency", cur), zap.String("range", rangeCode), zap.Error(err))
		d.reply(replier, "Couldn't generate chart.")
		return
	}

	png, err := charts.RenderRateChart(series, cur)
	if err != nil {
		log.LogError("Chart rendering failed",
			zap.String("currency", cur), zap.Error(err))
		d.reply(replier, "Couldn't generate chart.")
		return
	}

	if err := replier.ReplyFile(cur+"_rate.png", png); err != nil {
		log.LogError("Failed to send chart", zap.Error(err))
	}
}

// handleMentions is the passive path: scan the full original content and
// convert each detected mention into the guild's default currency. One
// failed conversion is logged and skipped; the rest still go out.
func (d *Dispatcher) handleMentions(ctx context.Context, msg Message, replier Replier) {
	matches := mentions.Detect(msg.Content, d.Registry)
	if len(matches) == 0 {
		return
	}

	target := d.Prefs.Get(msg.GuildID)
	if target == "" {
		return
	}

	for _, match := range matches {
		if match.Currency == target {
			continue
		}

		result, err := d.Rates.Convert(ctx, match.Currency, target, match.Value)
		if err != nil {
			log.LogWarn("Passive conversion failed",
				zap.String("from", match.Currency), zap.String("to", target), zap.Error(err))
			continue
		}

		d.reply(replier, fmt.Sprintf("%v %s = %.2f %s", match.Value, match.Currency, result, target))
	}
}

func (d *Dispatcher) reply(replier Replier, text string) {
	if err := replier.Reply(text); err != nil {
		log.LogError("Failed to send reply", zap.Error(err))
	}
}
