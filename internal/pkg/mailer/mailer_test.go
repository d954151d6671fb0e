package mailer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"hiring/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type recordingSender struct {
	sent []*mail.Msg
	err  error
}

func (s *recordingSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	s.sent = append(s.sent, messages...)
	return s.err
}

func postedJob(t *testing.T) *job.Job {
	t.Helper()
	now := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	j, err := job.RestoreJob(12, job.Details{
		Title:          "Data Scientist",
		Department:     "Data",
		Location:       "Remote / Pune",
		EmploymentType: "Full-time",
		Description:    "Apply machine learning.",
	}, 0, now, now)
	require.NoError(t, err)
	return j
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Username: "test@example.com"}.WithDefaults()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 587, cfg.Port)
	assert.Equal(t, "test@example.com", cfg.From)

	cfg = Config{Host: "smtp.local", Port: 2525, From: "jobs@example.com", Username: "u"}.WithDefaults()
	assert.Equal(t, "smtp.local", cfg.Host)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, "jobs@example.com", cfg.From)
}

func TestNew(t *testing.T) {
	m, err := New(Config{Username: "test@example.com", Password: "test", NotifyTo: []string{"hr@example.com"}}, nil)
	require.NoError(t, err)
	assert.True(t, m.Enabled())
}

func TestMailer_NotifyJobPosted(t *testing.T) {
	ctx := testContext(t)

	t.Run("no recipients is a no-op", func(t *testing.T) {
		s := &recordingSender{}
		m := newMailer(Config{From: "jobs@example.com"}.WithDefaults(), s, slogDiscard())

		require.NoError(t, m.NotifyJobPosted(ctx, postedJob(t)))
		assert.Empty(t, s.sent)
		assert.False(t, m.Enabled())
	})

	t.Run("sends to every recipient", func(t *testing.T) {
		s := &recordingSender{}
		cfg := Config{From: "jobs@example.com", NotifyTo: []string{"hr@example.com", "cto@example.com"}}
		m := newMailer(cfg.WithDefaults(), s, slogDiscard())

		require.NoError(t, m.NotifyJobPosted(ctx, postedJob(t)))
		require.Len(t, s.sent, 1)

		var buf bytes.Buffer
		_, err := s.sent[0].WriteTo(&buf)
		require.NoError(t, err)
		raw := buf.String()
		assert.Contains(t, raw, "New job posted: Data Scientist")
		assert.Contains(t, raw, "hr@example.com")
		assert.Contains(t, raw, "cto@example.com")
		assert.Contains(t, raw, "Location: Remote / Pune")
	})

	t.Run("send failure is returned", func(t *testing.T) {
		s := &recordingSender{err: errors.New("connection refused")}
		m := newMailer(Config{From: "jobs@example.com", NotifyTo: []string{"hr@example.com"}}, s, slogDiscard())

		err := m.NotifyJobPosted(ctx, postedJob(t))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("invalid recipient", func(t *testing.T) {
		s := &recordingSender{}
		m := newMailer(Config{From: "jobs@example.com", NotifyTo: []string{"not an address"}}, s, slogDiscard())

		assert.Error(t, m.NotifyJobPosted(ctx, postedJob(t)))
		assert.Empty(t, s.sent)
	})

	t.Run("missing sender", func(t *testing.T) {
		m := newMailer(Config{NotifyTo: []string{"hr@example.com"}}, &recordingSender{}, slogDiscard())
		assert.ErrorIs(t, m.NotifyJobPosted(ctx, postedJob(t)), ErrMailerNotConfigured)
	})
}

func TestJobPostedBody_SkipsEmptyFields(t *testing.T) {
	body := jobPostedBody(postedJob(t))

	assert.Contains(t, body, "id 12")
	assert.Contains(t, body, "Department: Data")
	assert.NotContains(t, body, "Salary:")
	assert.Contains(t, body, "Apply machine learning.")
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
