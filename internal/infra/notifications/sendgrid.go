package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"gearshare/internal/pkg/config"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier emails both parties about booking events. When email is
// disabled the notifier logs and succeeds, so local setups need no API key.
type SendGridNotifier struct {
	enabled bool
	apiKey  string
	from    *mail.Email
}

func NewSendGridNotifier(cfg config.EmailConfig) *SendGridNotifier {
	return &SendGridNotifier{
		enabled: cfg.Enabled,
		apiKey:  cfg.SendGridAPIKey,
		from:    mail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (n *SendGridNotifier) BookingCreated(ctx context.Context, notice commands.BookingNotice) error {
	subject := fmt.Sprintf("Booking request for %s", notice.GearName)
	body := fmt.Sprintf(
		"%s requested %s from %s to %s. Total: $%.2f.",
		notice.RenterName,
		notice.GearName,
		notice.StartDate.Format("2006-01-02"),
		notice.EndDate.Format("2006-01-02"),
		float64(notice.TotalCents)/100,
	)
	return n.send(ctx, notice.OwnerName, notice.OwnerEmail, subject, body)
}

func (n *SendGridNotifier) BookingStatusChanged(ctx context.Context, notice commands.BookingNotice) error {
	subject := fmt.Sprintf("Booking %s: %s", notice.Status, notice.GearName)
	body := fmt.Sprintf(
		"Your booking of %s (%s to %s) is now %s.",
		notice.GearName,
		notice.StartDate.Format("2006-01-02"),
		notice.EndDate.Format("2006-01-02"),
		notice.Status,
	)
	return n.send(ctx, notice.RenterName, notice.RenterEmail, subject, body)
}

func (n *SendGridNotifier) MessageReceived(ctx context.Context, notice commands.MessageNotice) error {
	subject := fmt.Sprintf("New message about %s", notice.GearName)
	body := fmt.Sprintf(
		"%s wrote about %s:\n\n%s",
		notice.SenderName,
		notice.GearName,
		notice.Body,
	)
	return n.send(ctx, notice.ReceiverName, notice.ReceiverEmail, subject, body)
}

func (n *SendGridNotifier) send(ctx context.Context, toName, toAddr, subject, body string) error {
	if !n.enabled {
		slog.Debug("email disabled, skipping notification", "to", toAddr, "subject", subject)
		return nil
	}

	message := mail.NewSingleEmail(n.from, subject, mail.NewEmail(toName, toAddr), body, "")
	client := sendgrid.NewSendClient(n.apiKey)

	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "sendgrid send failed")
	}
	if resp.StatusCode >= 400 {
		return errs.New(fmt.Sprintf("sendgrid rejected message: status %d", resp.StatusCode))
	}
	return nil
}
