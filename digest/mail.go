package digest

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/errors"
)

// Mailer sends HTML email over an authenticated SMTP session. It implements
// Sender.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

// NewMailer fails fast when the credentials are missing so a misconfigured
// batch dies at startup, not at the first recipient.
func NewMailer(host string, port int, username, password string) (*Mailer, error) {
	if username == "" || password == "" {
		return nil, errors.New("smtp username and password must be configured")
	}

	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}, nil
}

func (m *Mailer) Send(recipient, subject, htmlBody string) error {
	msg, err := m.message(recipient, subject, htmlBody)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	// SendMail upgrades the session with STARTTLS when the server offers it
	return smtp.SendMail(addr, auth, m.username, []string{recipient}, msg)
}

func (m *Mailer) message(recipient, subject, htmlBody string) ([]byte, error) {
	var buf bytes.Buffer
	alternative := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.username)
	fmt.Fprintf(&buf, "To: %s\r\n", recipient)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprint(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n", alternative.Boundary())
	fmt.Fprint(&buf, "\r\n")

	part, err := alternative.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(htmlBody)); err != nil {
		return nil, err
	}

	if err := alternative.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
