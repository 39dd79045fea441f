package store

import (
	"log"

	"adire-boutique/models"
)

// NotifyKind classifies a shopper-facing notification
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
	NotifyInfo    NotifyKind = "info"
)

// Notifier receives shopper-facing notifications emitted by the cart and
// wishlist ("added to cart", "already in wishlist", ...). Implementations
// must never block or return an error to the caller.
type Notifier interface {
	Notify(kind NotifyKind, text string)
}

// LogNotifier writes notifications to the server log
type LogNotifier struct{}

// Ensure LogNotifier implements Notifier
var _ Notifier = (*LogNotifier)(nil)

// Notify logs the notification
func (LogNotifier) Notify(kind NotifyKind, text string) {
	log.Printf("🔔 [%s] %s", kind, text)
}

// CollectNotifier gathers notifications so a handler can hand them back to
// the shopper as toasts. One instance per request; not safe for sharing.
type CollectNotifier struct {
	Events []models.Notification
}

// Ensure CollectNotifier implements Notifier
var _ Notifier = (*CollectNotifier)(nil)

// Notify records the notification and mirrors it to the server log
func (n *CollectNotifier) Notify(kind NotifyKind, text string) {
	n.Events = append(n.Events, models.Notification{Kind: string(kind), Text: text})
	log.Printf("🔔 [%s] %s", kind, text)
}

// NopNotifier discards notifications
type NopNotifier struct{}

// Ensure NopNotifier implements Notifier
var _ Notifier = (*NopNotifier)(nil)

// Notify does nothing
func (NopNotifier) Notify(kind NotifyKind, text string) {}
