package bot

import (
	"bytes"
	"context"
	"fmt"

	"currency-bot/internal/infra/log"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot owns the Discord gateway session and feeds inbound messages to the
// dispatcher.
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
}

func NewBot(token string, dispatcher *Dispatcher) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{session: session, dispatcher: dispatcher}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)

	return b, nil
}

// Start opens the gateway connection. Events are delivered on discordgo's
// own goroutines from here on.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.LogSuccess("Logged in as " + r.User.Username)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore every bot author, not just ourselves.
	if m.Author == nil || m.Author.Bot {
		return
	}

	msg := Message{
		Content:  m.Content,
		GuildID:  m.GuildID,
		AuthorID: m.Author.ID,
		IsAdmin: func() bool {
			perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
			if err != nil {
				log.LogWarn("Failed to resolve member permissions",
					zap.String("user_id", m.Author.ID), zap.Error(err))
				return false
			}
			return perms&discordgo.PermissionAdministrator != 0
		},
	}

	b.dispatcher.HandleMessage(context.Background(), msg, &discordReplier{
		session: s,
		message: m.Message,
	})
}

// discordReplier sends replies referencing the triggering message.
type discordReplier struct {
	session *discordgo.Session
	message *discordgo.Message
}

func (r *discordReplier) Reply(text string) error {
	_, err := r.session.ChannelMessageSendReply(r.message.ChannelID, text, r.message.Reference())
	return err
}

func (r *discordReplier) ReplyFile(name string, data []byte) error {
	_, err := r.session.ChannelMessageSendComplex(r.message.ChannelID, &discordgo.MessageSend{
		Files: []*discordgo.File{
			{Name: name, ContentType: "image/png", Reader: bytes.NewReader(data)},
		},
		Reference: r.message.Reference(),
	})
	return err
}
