package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

type captureSender struct {
	to, subject, body string
	calls             int
}

func (c *captureSender) Send(_ context.Context, to, subject, body string) error {
	c.to, c.subject, c.body = to, subject, body
	c.calls++
	return nil
}

func TestNotifyStatusSendsToReporter(t *testing.T) {
	cs := &captureSender{}
	n := NewStatusNotifier(cs, nil)
	err := n.NotifyStatus(context.Background(), model.Report{
		ID: "5", Title: "AC <rusak>", SubmittedBy: "Sari", Email: "sari@kampus.ac.id",
	}, "In Progress", "Teknisi datang\nbesok")
	require.NoError(t, err)

	assert.Equal(t, "sari@kampus.ac.id", cs.to)
	assert.Contains(t, cs.subject, "In Progress")
	assert.Contains(t, cs.body, "AC &lt;rusak&gt;")
	assert.Contains(t, cs.body, "Teknisi datang<br>besok")
}

func TestNotifyStatusWithoutEmail(t *testing.T) {
	cs := &captureSender{}
	err := NewStatusNotifier(cs, nil).NotifyStatus(context.Background(), model.Report{ID: "1"}, "Selesai", "")
	assert.ErrorIs(t, err, ErrNoRecipient)
	assert.Zero(t, cs.calls)
}
