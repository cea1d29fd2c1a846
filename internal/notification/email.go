package notification

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

var emailTemplates = map[domain.EmailTemplate]emailTemplate{
	domain.EmailSubmission: mustTemplate(
		"New training submitted: {{.title}}",
		`A new training event is waiting for payment and review.

Title:     {{.title}}
Organizer: {{.organizer_name}} <{{.organizer_email}}>
Package:   {{.package_type}}
Fee:       {{.fee}} {{.currency}}
Event ID:  {{.event_id}}
`),
	domain.EmailApproval: mustTemplate(
		"Your training \"{{.title}}\" is live",
		`Hello {{.organizer_name}},

Your training "{{.title}}" has been approved and is now listed:
{{.url}}

Thank you for listing with us.
`),
	domain.EmailRejection: mustTemplate(
		"Your training \"{{.title}}\" was not approved",
		`Hello {{.organizer_name}},

Unfortunately your training "{{.title}}" was not approved.
{{- if .reason}}

Reason: {{.reason}}
{{- end}}

Reply to this email if you have questions.
`),
	domain.EmailPaymentConfirmation: mustTemplate(
		"Payment received: {{.reference}}",
		`We have received your payment.

Reference: {{.reference}}
Amount:    {{.amount}} {{.currency}}
{{- if .channel}}
Channel:   {{.channel}}
{{- end}}

Your listing will be reviewed shortly.
`),
}

func mustTemplate(subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New("subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New("body").Option("missingkey=zero").Parse(body)),
	}
}

// EmailSender renders outbox email payloads and sends them over SMTP.
type EmailSender struct {
	client *mail.Client
	from   string
	logger logger.Logger
}

// NewEmailSender returns a sender that only logs when cfg.Host is empty.
func NewEmailSender(cfg SMTPConfig, logger logger.Logger) (*EmailSender, error) {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, emails disabled")
		return &EmailSender{from: cfg.From, logger: logger}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &EmailSender{client: client, from: cfg.From, logger: logger}, nil
}

func (s *EmailSender) Send(ctx context.Context, p domain.EmailPayload) error {
	subject, body, err := render(p)
	if err != nil {
		return err
	}

	if s.client == nil {
		s.logger.Debug("email skipped (smtp disabled)",
			logger.String("to", p.To),
			logger.String("subject", subject),
		)
		return nil
	}

	msg := mail.NewMsg()
	if err = msg.From(s.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err = msg.To(p.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email sent",
		logger.String("to", p.To),
		logger.String("template", string(p.Template)),
	)
	return nil
}

func render(p domain.EmailPayload) (string, string, error) {
	tpl, ok := emailTemplates[p.Template]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", p.Template)
	}

	var subject, body bytes.Buffer
	if err := tpl.subject.Execute(&subject, p.Data); err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := tpl.body.Execute(&body, p.Data); err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}

	return subject.String(), body.String(), nil
}
