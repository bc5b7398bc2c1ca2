package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendQuoteSummary(toEmail, subject, body string) error
	SendQuoteNotification(toEmail, customerEmail, body string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendQuoteSummary mails the customer their quote request summary.
func (s *emailService) SendQuoteSummary(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for your quote request!</h2>
			<p>Here is a copy of what you submitted. Our team will get back to you within one business day.</p>
			<pre style="background: #f5f5f5; padding: 15px; border-radius: 5px; white-space: pre-wrap;">%s</pre>
			<p>Questions? Call us at 425.303.3381 (Mon-Fri, 8am-5pm).</p>
		</div>
	`, htmlEscape(body))

	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send quote summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Quote summary sent to %s\n", toEmail)
	return nil
}

// SendQuoteNotification mails the sales inbox about a new confirmed quote.
func (s *emailService) SendQuoteNotification(toEmail, customerEmail, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New quote request from %s", customerEmail))

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New quote request from the chatbot</h2>
			<pre style="background: #f5f5f5; padding: 15px; border-radius: 5px; white-space: pre-wrap;">%s</pre>
		</div>
	`, htmlEscape(body))

	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send quote notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Quote notification sent to %s\n", toEmail)
	return nil
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
