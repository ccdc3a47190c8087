package activity

import "context"

// Notifier is the user-facing side of session expiry.
type Notifier interface {
	// NotifyExpired shows the "session expired" notice.
	NotifyExpired(ctx context.Context)
	// DismissNotice hides the notice after the session is gone.
	DismissNotice(ctx context.Context)
	// RedirectToLogin navigates to the authentication entry point.
	RedirectToLogin(ctx context.Context)
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) NotifyExpired(context.Context)   {}
func (NopNotifier) DismissNotice(context.Context)   {}
func (NopNotifier) RedirectToLogin(context.Context) {}
