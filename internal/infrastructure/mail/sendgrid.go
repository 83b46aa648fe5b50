package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridDispatcher sends transactional mail through SendGrid
type SendGridDispatcher struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
	baseURL     string
}

var sendMail = func(client *sendgrid.Client, message *sgmail.SGMailV3) (*rest.Response, error) {
	return client.Send(message)
}

// NewSendGridDispatcher creates a new SendGrid dispatcher. baseURL is
// the public server URL embedded in activation links.
func NewSendGridDispatcher(apiKey, fromName, fromAddress, baseURL string) *SendGridDispatcher {
	return &SendGridDispatcher{
		client:      sendgrid.NewSendClient(apiKey),
		fromName:    fromName,
		fromAddress: fromAddress,
		baseURL:     baseURL,
	}
}

// SendActivationEmail sends the welcome email with the activation link.
// Single attempt; the caller decides whether a failure matters.
func (d *SendGridDispatcher) SendActivationEmail(ctx context.Context, toEmail, code string) error {
	link := ActivationLink(d.baseURL, code)

	from := sgmail.NewEmail(d.fromName, d.fromAddress)
	to := sgmail.NewEmail("", toEmail)
	subject := "Bienvenido a " + d.fromName
	plain := "Gracias por registrarte. Para confirmar tu cuenta visita: " + link
	html := `To confirm the account/Para confirmar tu cuenta click <a href="` + link + `">here/aqui</a>`

	message := sgmail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := sendMail(d.client, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}

// ActivationLink builds the public activation URL for a verification code
func ActivationLink(baseURL, code string) string {
	return baseURL + "/api/v1/account/activate?verification_code=" + code
}
