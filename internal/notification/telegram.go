package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramPlatform posts announcements to a channel the bot administers.
type TelegramPlatform struct {
	bot     *tgbotapi.BotAPI
	client  *http.Client
	channel string
	logger  logger.Logger
}

// NewTelegramPlatform connects the bot. endpoint overrides the Bot API URL
// format and may be empty. timeout bounds every Bot API request.
func NewTelegramPlatform(token, channel, endpoint string, timeout time.Duration, logger logger.Logger) (*TelegramPlatform, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	client := &http.Client{Timeout: timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramPlatform{bot: bot, client: client, channel: channel, logger: logger}, nil
}

// ctxClient binds outgoing Bot API requests to the caller's context.
type ctxClient struct {
	ctx    context.Context
	client *http.Client
}

func (c ctxClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(c.ctx))
}

func (t *TelegramPlatform) Name() string { return "telegram" }

func (t *TelegramPlatform) Post(ctx context.Context, p domain.SocialPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessageToChannel(t.channel, announcement(p))

	// Send has no context parameter, so each call uses a shallow copy of the
	// bot with a request-scoped client.
	bot := *t.bot
	bot.Client = ctxClient{ctx: ctx, client: t.client}

	if _, err := bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	t.logger.Debug("telegram post sent",
		logger.String("channel", t.channel),
		logger.String("event_id", p.EventID),
	)
	return nil
}
