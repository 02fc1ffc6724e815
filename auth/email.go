package auth

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends the two account mails we ever send. Split out so handlers and
// tests don't need a SendGrid key.
type Mailer interface {
	SendVerification(email string) error
	SendRecovery(email string, code string) error
}

type SendgridMailer struct {
	apiKey string
}

func NewSendgridMailer(apiKey string) *SendgridMailer {
	return &SendgridMailer{apiKey: apiKey}
}

func (m *SendgridMailer) send(email, subject, plain, html string) error {
	from := mail.NewEmail("Daybook Support", "donotreply@daybook.app")
	to := mail.NewEmail("", email)

	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	log.Println("email sent, status: ", response.StatusCode)
	return nil
}

// SendVerification asks the user to confirm a new email address.
func (m *SendgridMailer) SendVerification(email string) error {
	plain := fmt.Sprintf("Please confirm your new Daybook email address: %s", email)
	html := fmt.Sprintf("<strong>Please confirm your new Daybook email address: %s</strong>", email)
	return m.send(email, "Confirm your email address", plain, html)
}

// SendRecovery mails a password reset code. Codes are valid for 15 minutes.
func (m *SendgridMailer) SendRecovery(email string, code string) error {
	plain := fmt.Sprintf("Your password reset code is: %s", code)
	html := fmt.Sprintf("<strong>Your password reset code is: %s</strong>", code)
	return m.send(email, "Password Reset Code", plain, html)
}
