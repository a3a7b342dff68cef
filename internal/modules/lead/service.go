package lead

import (
	"context"
	"strings"
	"time"

	"upravytelka/internal/config"
)

const messageTimeLayout = "02.01.2006, 15:04"

// Notifier delivers a formatted notification to the destination chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type Service struct {
	cfg      *config.Config
	notifier Notifier
	now      func() time.Time
	loc      *time.Location
}

func NewService(cfg *config.Config, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		notifier: notifier,
		now:      time.Now,
		loc:      kyivOrLocal(),
	}
}

// Submit validates a raw submission and, when it passes, relays it to the
// configured chat. The returned list is non-empty exactly when validation
// failed; in that case no delivery is attempted. Delivery is fire-once:
// a failed send is reported to the caller, never retried.
func (s *Service) Submit(ctx context.Context, req SubmitLeadRequest) ([]string, error) {
	l, failed := Validate(req)
	if len(failed) > 0 {
		return failed, nil
	}

	if !s.cfg.TelegramConfigured() {
		return nil, ErrNotConfigured
	}

	return nil, s.notifier.Send(ctx, s.formatMessage(l))
}

// formatMessage builds the chat notification: header, timestamp, then the
// field values in a fixed order the reviewers are used to.
func (s *Service) formatMessage(l Lead) string {
	var b strings.Builder
	b.WriteString("🆕 Нова заявка з сайту\n")
	b.WriteString("🕒 " + s.now().In(s.loc).Format(messageTimeLayout) + "\n\n")
	b.WriteString("👤 Ім'я: " + l.Name + "\n")
	b.WriteString("📞 Контакт: " + l.Contact + "\n")
	b.WriteString("🏠 Тип об'єкта: " + l.Type + "\n")
	b.WriteString("📍 Локація: " + l.Location + "\n")
	b.WriteString("📅 Старт: " + l.Timeline + "\n")
	b.WriteString("📝 Потреби: " + l.Needs)
	return b.String()
}

// The audience reads timestamps in Kyiv time; without tzdata on the host
// we degrade to server-local rather than refuse to start.
func kyivOrLocal() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return time.Local
	}
	return loc
}
