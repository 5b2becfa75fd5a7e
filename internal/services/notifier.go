package services

// Notifier is the realtime fan-out surface services publish to. A nil
// Notifier field on a service disables publishing, which is what the
// sqlmock tests rely on.
type Notifier interface {
	BroadcastAll(event any)
	BroadcastTracking(scheduleID int64, event any)
}
