package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationLink(t *testing.T) {
	link := ActivationLink("https://shop.alvezinc.com", "abc123")
	assert.Equal(t, "https://shop.alvezinc.com/api/v1/account/activate?verification_code=abc123", link)
}

func TestSendActivationEmail(t *testing.T) {
	origSend := sendMail
	t.Cleanup(func() { sendMail = origSend })

	var captured *sgmail.SGMailV3
	sendMail = func(_ *sendgrid.Client, message *sgmail.SGMailV3) (*rest.Response, error) {
		captured = message
		return &rest.Response{StatusCode: 202}, nil
	}

	d := NewSendGridDispatcher("key", "Alvezinc S.L.", "no-reply@alvezinc.com", "https://shop.alvezinc.com")
	err := d.SendActivationEmail(context.Background(), "a@x.com", "code-1")
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "no-reply@alvezinc.com", captured.From.Address)
	require.Len(t, captured.Personalizations, 1)
	require.Len(t, captured.Personalizations[0].To, 1)
	assert.Equal(t, "a@x.com", captured.Personalizations[0].To[0].Address)
	require.NotEmpty(t, captured.Content)
	assert.Contains(t, captured.Content[len(captured.Content)-1].Value, "verification_code=code-1")
}

func TestSendActivationEmail_Failures(t *testing.T) {
	origSend := sendMail
	t.Cleanup(func() { sendMail = origSend })

	d := NewSendGridDispatcher("key", "Alvezinc S.L.", "no-reply@alvezinc.com", "https://shop.alvezinc.com")

	sendMail = func(*sendgrid.Client, *sgmail.SGMailV3) (*rest.Response, error) {
		return nil, errors.New("network down")
	}
	assert.Error(t, d.SendActivationEmail(context.Background(), "a@x.com", "c"))

	sendMail = func(*sendgrid.Client, *sgmail.SGMailV3) (*rest.Response, error) {
		return &rest.Response{StatusCode: 401}, nil
	}
	assert.Error(t, d.SendActivationEmail(context.Background(), "a@x.com", "c"))
}
