package notify

import "context"

// NotificationService pushes announcements to the student site's subscribers.
type NotificationService interface {
	BroadcastUpdate(ctx context.Context, title, body string) error
}
