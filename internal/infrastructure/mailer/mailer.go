package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"orientalgroup/internal/config"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender is what the reply flow depends on; tests substitute a fake.
type Sender interface {
	Send(msg Message) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(addr, auth, m.cfg.User, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

// ReplyBody renders the admin reply sent to a contact or quote-request
// submitter, quoting the original message.
func ReplyBody(customerName, originalMessage, adminReply, adminName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", customerName)
	b.WriteString("Thank you for contacting Oriental Group. Here is our reply to your inquiry:\n\n")
	b.WriteString(adminReply)
	fmt.Fprintf(&b, "\n\nBest regards,\n%s\nOriental Group\n\n", adminName)
	b.WriteString("--- Your original message ---\n")
	b.WriteString(originalMessage)
	b.WriteString("\n")
	return b.String()
}
