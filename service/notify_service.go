package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"adire-boutique/models"
	"adire-boutique/utils"
)

// MessageSender sends a text message to a phone number
type MessageSender interface {
	Send(ctx context.Context, to, body string) (*WhatsAppResponse, error)
}

// NotifyService relays storefront events to the boutique owner's WhatsApp.
// Delivery is fire-and-forget: the record is already persisted before a
// notification goes out, so a relay failure is only logged.
type NotifyService struct {
	sender     MessageSender
	ownerPhone string // E.164 without plus, e.g. "2348012345678"
}

// NewNotifyService creates a new NotifyService. An owner phone that fails
// normalization disables the relay rather than failing startup.
func NewNotifyService(sender MessageSender, ownerPhone string) *NotifyService {
	normalized, err := utils.NormalizePhone(ownerPhone)
	if err != nil {
		log.Printf("⚠️  NotifyService: invalid owner phone %q, notifications disabled: %v", ownerPhone, err)
	}
	return &NotifyService{
		sender:     sender,
		ownerPhone: normalized,
	}
}

// dispatch sends asynchronously with its own timeout, detached from the
// request context that triggered it
func (s *NotifyService) dispatch(kind, body string) {
	if s.sender == nil || s.ownerPhone == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := s.sender.Send(ctx, s.ownerPhone, body); err != nil {
			log.Printf("⚠️  NotifyService: failed to relay %s notification: %v", kind, err)
			return
		}
		log.Printf("📲 NotifyService: relayed %s notification", kind)
	}()
}

// NotifyOrder relays a new checkout order
func (s *NotifyService) NotifyOrder(order *models.Order, lines []models.OrderLine) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🛍 New order %s\n", order.PaymentReference)
	fmt.Fprintf(&sb, "Customer: %s (%s)\n", order.CustomerName, order.CustomerPhone)
	for _, line := range lines {
		fmt.Fprintf(&sb, "• %s x%d — %s\n", line.ProductName, line.Qty, utils.FormatNGN(line.UnitPrice*int64(line.Qty)))
	}
	fmt.Fprintf(&sb, "Total: %s", utils.FormatNGN(order.Total))
	if order.DeliveryAddress != "" {
		fmt.Fprintf(&sb, "\nDeliver to: %s", order.DeliveryAddress)
	}

	s.dispatch("order", sb.String())
}

// NotifyBooking relays a new fitting or consultation request
func (s *NotifyService) NotifyBooking(booking *models.Booking) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 New %s booking\n", booking.Service)
	fmt.Fprintf(&sb, "Customer: %s (%s)\n", booking.CustomerName, booking.CustomerPhone)
	fmt.Fprintf(&sb, "Preferred: %s", booking.PreferredDate)
	if booking.PreferredTime != "" {
		fmt.Fprintf(&sb, " at %s", booking.PreferredTime)
	}
	if booking.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s", booking.Notes)
	}

	s.dispatch("booking", sb.String())
}

// NotifyBespokeOrder relays a new bespoke tailoring request
func (s *NotifyService) NotifyBespokeOrder(order *models.BespokeOrder) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✂️ New bespoke request: %s in %s\n", order.Garment, order.Fabric)
	fmt.Fprintf(&sb, "Customer: %s (%s)", order.CustomerName, order.CustomerPhone)
	if order.Budget > 0 {
		fmt.Fprintf(&sb, "\nBudget: %s", utils.FormatNGN(order.Budget))
	}
	if order.Measurements != "" {
		fmt.Fprintf(&sb, "\nMeasurements: %s", order.Measurements)
	}

	s.dispatch("bespoke", sb.String())
}

// NotifyAsoEbiRequest relays a new aso-ebi group request
func (s *NotifyService) NotifyAsoEbiRequest(req *models.AsoEbiRequest) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "👗 New aso-ebi request: %s on %s\n", req.EventType, req.EventDate)
	fmt.Fprintf(&sb, "Coordinator: %s (%s)\n", req.CoordinatorName, req.CoordinatorPhone)
	fmt.Fprintf(&sb, "Guests: %d", len(req.Guests))
	if req.QuotedTotal > 0 {
		fmt.Fprintf(&sb, "\nQuoted: %s", utils.FormatNGN(req.QuotedTotal))
	}

	s.dispatch("asoebi", sb.String())
}
