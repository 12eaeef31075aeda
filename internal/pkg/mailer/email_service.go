package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactEmail(name, fromEmail, message string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	contactInbox string // destination for contact-form submissions
}

func NewEmailService(host string, port int, ssl bool, username, password, senderEmail, contactInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	d.SSL = ssl

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		contactInbox: contactInbox,
	}
}

// SendContactEmail relays a contact-form submission to the site owner's
// inbox, with Reply-To pointing back at the visitor.
func (s *emailService) SendContactEmail(name, fromEmail, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, name))
	m.SetHeader("Reply-To", fromEmail)
	m.SetHeader("To", s.contactInbox)
	m.SetHeader("Subject", fmt.Sprintf("Portfolio Contact: %s", name))

	escaped := html.EscapeString(message)
	body := fmt.Sprintf(`<p>%s</p><p>From: %s (%s)</p>`,
		escaped, html.EscapeString(name), html.EscapeString(fromEmail))

	m.SetBody("text/plain", message)
	m.AddAlternative("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send contact email from %s: %v\n", fromEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Contact email relayed from %s\n", fromEmail)
	return nil
}
