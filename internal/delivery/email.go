package delivery

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// MailConfig holds the SMTP server and addresses used by a Mailer.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer sends rendered reports as e-mail attachments.
type Mailer struct {
	cfg  MailConfig
	send func(...*gomail.Message) error
}

// NewMailer returns a Mailer that dials the configured SMTP server for
// every message.
func NewMailer(cfg MailConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{cfg: cfg, send: dialer.DialAndSend}
}

// Send mails d with the given subject.
func (m *Mailer) Send(subject string, d Download) error {
	if err := m.send(m.message(subject, d)); err != nil {
		return fmt.Errorf("failed to send e-mail: %w", err)
	}
	return nil
}

func (m *Mailer) message(subject string, d Download) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", "Se adjunta el corte de caja.<br>")

	data := d.Data
	msg.Attach(d.FileName,
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
	return msg
}
