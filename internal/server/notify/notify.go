// Package notify delivers out-of-band messages to users.
package notify

import (
	"context"

	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/models"
)

// Notifier delivers password-reset links. Delivery is fire-and-forget from
// the caller's point of view.
type Notifier interface {
	PasswordReset(ctx context.Context, user *models.User, token string) error
}

// LogNotifier writes reset links to the log instead of sending mail.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{log: l.With("module", "notify")}
}

func (n *LogNotifier) PasswordReset(ctx context.Context, user *models.User, token string) error {
	n.log.Info(ctx, "password reset requested",
		"uid", user.ID,
		"email", user.Email,
		"token", token,
	)
	return nil
}
