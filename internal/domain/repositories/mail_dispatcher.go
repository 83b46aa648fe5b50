package repositories

import "context"

// MailDispatcher sends transactional email. Delivery is single-attempt
// and best-effort: callers log failures instead of retrying.
type MailDispatcher interface {
	SendActivationEmail(ctx context.Context, toEmail, code string) error
}
