package service

import (
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/pkg/logger"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type EmailMessage struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}

// EmailService is any backend that can deliver messages. Delivery is
// fire-and-forget; failures are logged, never surfaced to callers.
type EmailService interface {
	SendMessages(messages ...*EmailMessage)
}

func NewEmailService(cfg config.MailConfig) EmailService {
	if cfg.Backend == "sendgrid" && cfg.SendgridKey != "" {
		return &sendgridEmailService{cfg: cfg}
	}
	return &consoleEmailService{cfg: cfg}
}

type sendgridEmailService struct {
	cfg config.MailConfig
}

func (s *sendgridEmailService) SendMessages(messages ...*EmailMessage) {
	from := sgmail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	client := sendgrid.NewSendClient(s.cfg.SendgridKey)

	for _, msg := range messages {
		msg := msg
		go func() {
			to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
			m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")
			resp, err := client.Send(m)
			if err != nil {
				logger.Log.Error("email send failed", zap.String("to", msg.ToEmail), zap.Error(err))
				return
			}
			if resp.StatusCode >= 400 {
				logger.Log.Error("email rejected",
					zap.String("to", msg.ToEmail),
					zap.Int("status", resp.StatusCode),
				)
			}
		}()
	}
}

// consoleEmailService logs messages instead of sending them. Used in
// development and tests.
type consoleEmailService struct {
	cfg config.MailConfig

	mu   sync.Mutex
	Sent []EmailMessage
}

func (s *consoleEmailService) SendMessages(messages ...*EmailMessage) {
	for _, msg := range messages {
		s.mu.Lock()
		s.Sent = append(s.Sent, *msg)
		s.mu.Unlock()

		if logger.Log != nil {
			logger.Log.Info("email (console backend)",
				zap.String("to", fmt.Sprintf("%s <%s>", msg.ToName, msg.ToEmail)),
				zap.String("subject", msg.Subject),
				zap.String("body", msg.Body),
			)
		}
	}
}

func (s *consoleEmailService) SentMessages() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmailMessage, len(s.Sent))
	copy(out, s.Sent)
	return out
}
