// Package service mengirim e-mail pemberitahuan perubahan status laporan.
package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

var ErrNoRecipient = errors.New("laporan tidak memiliki email pelapor")

// Sender mengirim satu e-mail HTML.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPSender memakai gomail.Dialer.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("kirim email ke %s: %w", to, err)
	}
	return nil
}

// StatusNotifier menyusun e-mail perubahan status untuk pelapor.
type StatusNotifier struct {
	Sender Sender
	Log    *zap.Logger
}

func NewStatusNotifier(s Sender, log *zap.Logger) *StatusNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatusNotifier{Sender: s, Log: log.Named("mailer")}
}

// NotifyStatus mengirim e-mail ke email pelapor yang ada di record laporan.
func (n *StatusNotifier) NotifyStatus(ctx context.Context, r model.Report, status, message string) error {
	to := strings.TrimSpace(r.Email)
	if to == "" {
		return ErrNoRecipient
	}
	subject, body := ComposeStatusEmail(r, status, message)
	if err := n.Sender.Send(ctx, to, subject, body); err != nil {
		n.Log.Warn("email status gagal", zap.String("id", r.ID), zap.Error(err))
		return err
	}
	n.Log.Info("email status terkirim", zap.String("id", r.ID), zap.String("status", status))
	return nil
}

// ComposeStatusEmail subject + body HTML. Semua teks dari laporan di-escape.
func ComposeStatusEmail(r model.Report, status, message string) (string, string) {
	subject := fmt.Sprintf("[LaporKampus] Status laporan Anda: %s", status)

	var b strings.Builder
	b.WriteString("<p>Halo ")
	b.WriteString(html.EscapeString(r.SubmittedBy))
	b.WriteString(",</p>")
	fmt.Fprintf(&b, "<p>Status laporan <strong>%s</strong> kini <strong>%s</strong>.</p>",
		html.EscapeString(r.Title), html.EscapeString(status))
	if strings.TrimSpace(message) != "" {
		b.WriteString("<p>Tanggapan admin:</p><blockquote>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(message), "\n", "<br>"))
		b.WriteString("</blockquote>")
	}
	b.WriteString("<p>Terima kasih telah menggunakan LaporKampus.</p>")
	return subject, b.String()
}
