package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog/log"
	mail "github.com/wneessen/go-mail"

	"tiara/config"
	"tiara/infras/otel"
	"tiara/shared/constant"
	"tiara/shared/timezone"
)

// MenuItem is the slice of the menu an email body needs. Items arrive
// ordered by category and are rendered as one course section per category.
type MenuItem struct {
	Name        string
	Description string
	Category    string
	PriceMinor  int64
}

type Mailer interface {
	SendMenuEmail(ctx context.Context, toEmail, guestName string, items []MenuItem) error
	SendThankYouEmail(ctx context.Context, toEmail, guestName string) error
}

type mailerImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &mailerImpl{
		cfg:  cfg,
		otel: otl,
	}
}

func (m *mailerImpl) SendMenuEmail(ctx context.Context, toEmail, guestName string, items []MenuItem) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.SendMenuEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := "Your Exclusive Menu Access | Epicurean Escape by Tiara"

	return m.send(ctx, toEmail, subject, menuBody(guestName, items))
}

func (m *mailerImpl) SendThankYouEmail(ctx context.Context, toEmail, guestName string) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.SendThankYouEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := "Thank You for Dining With Us | Epicurean Escape by Tiara"

	return m.send(ctx, toEmail, subject, thankYouBody(guestName))
}

func (m *mailerImpl) send(ctx context.Context, toEmail, subject, htmlBody string) error {
	if !m.cfg.SMTP.Enable {
		log.Warn().Str("to", toEmail).Str("subject", subject).Msg("SMTP disabled, skipping email delivery")

		return nil
	}

	client, err := mail.NewClient(
		m.cfg.SMTP.Host,
		mail.WithPort(m.cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTP.Username),
		mail.WithPassword(m.cfg.SMTP.Password),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize smtp client")

		return fmt.Errorf("failed to initialize smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.SMTP.FromName, m.cfg.SMTP.From); err != nil {
		return fmt.Errorf("failed to set from address: %w", err)
	}

	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("failed to set to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("email sent")

	return nil
}

// sectionTitles maps a stored category to its heading in the email.
var sectionTitles = map[string]string{
	"Appetizer": "Appetizers",
	"Main":      "Main Courses",
	"Dessert":   "Desserts",
}

func menuBody(guestName string, items []MenuItem) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(`
	<div style="font-family: 'Georgia', serif; color: #0A0A0A; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #FAFAFA; border: 1px solid #C5A059;">
	  <div style="text-align: center; border-bottom: 2px solid #741213; padding-bottom: 20px; margin-bottom: 20px;">
	    <h1 style="color: #741213; margin: 0; text-transform: uppercase; letter-spacing: 2px;">Epicurean Escape</h1>
	    <p style="font-style: italic; color: #741213; margin-top: 5px;">by Tiara</p>
	  </div>
	  <p>Dear %s,</p>
	  <p>We are delighted to confirm your reservation request. As promised, here is exclusive access to our full seasonal menu.</p>`,
		html.EscapeString(guestName)))

	currentCategory := ""

	for _, item := range items {
		if item.Category != currentCategory {
			if currentCategory != "" {
				builder.WriteString(`
	  </div>`)
			}

			currentCategory = item.Category

			title, ok := sectionTitles[currentCategory]
			if !ok {
				title = currentCategory
			}

			builder.WriteString(fmt.Sprintf(`
	  <div style="background-color: #fff; padding: 20px; border: 1px solid #e5e5e5; margin: 20px 0;">
	    <h2 style="color: #741213; text-align: center; border-bottom: 1px solid #C5A059; padding-bottom: 10px;">%s</h2>`,
				html.EscapeString(title)))
		}

		builder.WriteString(fmt.Sprintf(`
	    <div style="margin-bottom: 15px;">
	      <p style="margin: 0; font-weight: bold; font-size: 18px;">%s <span style="float: right; color: #741213;">%s</span></p>
	      <p style="margin: 5px 0 0 0; font-size: 14px; color: #666;">%s</p>
	    </div>`,
			html.EscapeString(item.Name), formatPrice(item.PriceMinor), html.EscapeString(item.Description)))
	}

	if currentCategory != "" {
		builder.WriteString(`
	  </div>`)
	}

	builder.WriteString(fmt.Sprintf(`
	  <p>We look forward to welcoming you.</p>
	  <p style="font-size: 12px; text-align: center; margin-top: 30px; color: #999;">&copy; %d Epicurean Escape by Tiara. All rights reserved.</p>
	</div>`, timezone.Now().Year()))

	return builder.String()
}

func formatPrice(minor int64) string {
	if minor%100 == 0 {
		return fmt.Sprintf("$%d", minor/100)
	}

	return fmt.Sprintf("$%d.%02d", minor/100, minor%100)
}

func thankYouBody(guestName string) string {
	return fmt.Sprintf(`
	<div style="font-family: 'Georgia', serif; color: #0A0A0A; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #FAFAFA; border: 1px solid #C5A059;">
	  <div style="text-align: center; border-bottom: 2px solid #741213; padding-bottom: 20px; margin-bottom: 20px;">
	    <h1 style="color: #741213; margin: 0; text-transform: uppercase; letter-spacing: 2px;">Epicurean Escape</h1>
	    <p style="font-style: italic; color: #741213; margin-top: 5px;">by Tiara</p>
	  </div>
	  <p>Dear %s,</p>
	  <p>Thank you for dining with us. It was a pleasure to host you, and we hope the evening was everything you wished for.</p>
	  <p>We would be honoured to welcome you back soon.</p>
	  <p style="font-size: 12px; text-align: center; margin-top: 30px; color: #999;">&copy; %d Epicurean Escape by Tiara. All rights reserved.</p>
	</div>`, guestName, timezone.Now().Year())
}
