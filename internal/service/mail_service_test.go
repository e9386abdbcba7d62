package service

import (
	"lms_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailServicePicksBackend(t *testing.T) {
	console := NewEmailService(config.MailConfig{Backend: "console"})
	_, ok := console.(*consoleEmailService)
	assert.True(t, ok)

	// sendgrid without a key falls back to console
	fallback := NewEmailService(config.MailConfig{Backend: "sendgrid"})
	_, ok = fallback.(*consoleEmailService)
	assert.True(t, ok)

	sg := NewEmailService(config.MailConfig{Backend: "sendgrid", SendgridKey: "SG.x"})
	_, ok = sg.(*sendgridEmailService)
	assert.True(t, ok)
}

func TestConsoleEmailServiceRecordsMessages(t *testing.T) {
	svc := &consoleEmailService{}

	svc.SendMessages(
		&EmailMessage{ToName: "A", ToEmail: "a@example.com", Subject: "one", Body: "first"},
		&EmailMessage{ToName: "B", ToEmail: "b@example.com", Subject: "two", Body: "second"},
	)

	sent := svc.SentMessages()
	require.Len(t, sent, 2)
	assert.Equal(t, "a@example.com", sent[0].ToEmail)
	assert.Equal(t, "two", sent[1].Subject)
}
