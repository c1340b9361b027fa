// Package email delivers lesson reminders over SMTP as HTML mail.
package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateName is the template rendered for every reminder.
const TemplateName = "lesson-reminder"

// Notifier sends reminder mail through one SMTP relay.
type Notifier struct {
	host string
	addr string
	from mail.Address
	auth smtp.Auth
	tmpl *template.Template
	log  *slog.Logger
	now  func() time.Time
}

// NewNotifier creates an SMTP notifier from config.NotifierConfig.
func NewNotifier(cfg config.NotifierConfig, logger *slog.Logger) (*Notifier, error) {
	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("notifier from address: %w", err)
	}
	from.Name = cfg.FromName

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	if tmpl.Lookup(TemplateName) == nil {
		return nil, fmt.Errorf("email template %q not found", TemplateName)
	}

	n := &Notifier{
		host: cfg.SMTPHost,
		addr: net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		from: *from,
		tmpl: tmpl,
		log:  logger.With("adapter", "smtp_notifier"),
		now:  time.Now,
	}
	if cfg.SMTPUsername != "" {
		n.auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return n, nil
}

// Send renders the reminder template with model and mails it to email.
// Failures are returned as *domain.DeliveryError.
func (n *Notifier) Send(ctx context.Context, email, subject string, model map[string]any) error {
	to, err := mail.ParseAddress(email)
	if err != nil {
		return &domain.DeliveryError{Recipient: email, Err: fmt.Errorf("parse recipient: %w", err)}
	}

	msg, err := n.compose(to, subject, model)
	if err != nil {
		return &domain.DeliveryError{Recipient: email, Err: err}
	}

	if err := n.deliver(ctx, to.Address, msg); err != nil {
		return &domain.DeliveryError{Recipient: email, Err: err}
	}

	n.log.DebugContext(ctx, "reminder mail sent", slog.String("to", to.Address), slog.String("subject", subject))
	return nil
}

// Render executes the reminder template.
func (n *Notifier) Render(model map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := n.tmpl.ExecuteTemplate(&buf, TemplateName, model); err != nil {
		return "", fmt.Errorf("render %s: %w", TemplateName, err)
	}
	return buf.String(), nil
}

func (n *Notifier) compose(to *mail.Address, subject string, model map[string]any) ([]byte, error) {
	body, err := n.Render(model)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&buf, "%s: %s\r\n", k, v) }
	header("From", n.from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", subject))
	header("Date", n.now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// deliver runs one SMTP transaction bounded by ctx.
func (n *Notifier) deliver(ctx context.Context, to string, msg []byte) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", n.addr, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}

	c, err := smtp.NewClient(conn, n.host)
	if err != nil {
		return fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: n.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if n.auth != nil {
		if ok, _ := c.Extension("AUTH"); !ok {
			return errors.New("smtp server does not support AUTH")
		}
		if err := c.Auth(n.auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(n.from.Address); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}
	return c.Quit()
}
