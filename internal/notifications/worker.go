// Package notifications turns committed order events into emails. Command
// handlers publish events after their transaction commits; a single worker
// goroutine drains the queue and hands rendered messages to the mail sender.
// Nothing here can unwind a committed transition: a full queue drops the
// event, a failed send is logged and forgotten.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/core/ports"
)

const defaultQueueSize = 256

// Worker consumes order events and sends one email per event. It implements
// ports.OrderEventPublisher for the command handlers.
type Worker struct {
	events chan ports.OrderEvent
	sender ports.EmailSender
	logger *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// NewWorker creates a worker over the given sender.
func NewWorker(sender ports.EmailSender, logger *slog.Logger) *Worker {
	return &Worker{
		events: make(chan ports.OrderEvent, defaultQueueSize),
		sender: sender,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Publish enqueues an event without blocking. When the queue is full the
// event is dropped and logged; it is never retried.
func (w *Worker) Publish(event ports.OrderEvent) {
	select {
	case w.events <- event:
	default:
		w.logger.Warn("notification queue full, dropping event",
			"kind", string(event.Kind),
			"order_id", event.Order.ID().String(),
		)
	}
}

// Start launches the consuming goroutine.
func (w *Worker) Start() {
	go w.run()
}

// Stop closes the queue and waits for the remaining events to drain.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.events)
	})
	<-w.done
}

func (w *Worker) run() {
	defer close(w.done)

	for event := range w.events {
		w.process(event)
	}
}

func (w *Worker) process(event ports.OrderEvent) {
	recipient, subject, body, ok := renderEmail(event)
	if !ok {
		w.logger.Warn("no email template for event", "kind", string(event.Kind))
		return
	}

	if err := w.sender.Send(context.Background(), recipient, subject, body); err != nil {
		w.logger.Error("email send failed",
			"kind", string(event.Kind),
			"order_id", event.Order.ID().String(),
			"recipient", recipient,
			"error", err,
		)
		return
	}

	w.logger.Info("email sent",
		"kind", string(event.Kind),
		"order_id", event.Order.ID().String(),
	)
}

// renderEmail picks the recipient and renders subject and body for an event.
// Recipients are identity ids; the mail sender resolves them to addresses.
func renderEmail(event ports.OrderEvent) (recipient, subject, body string, ok bool) {
	aggregate := event.Order

	switch event.Kind {
	case ports.EventOrderPlaced:
		return aggregate.ChefID().String(),
			"New booking request",
			renderBody(aggregate,
				"You have a new booking request.",
				"Please accept or decline within the next five minutes."),
			true

	case ports.EventOrderAccepted:
		return aggregate.CustomerID().String(),
			"Your booking was accepted",
			renderBody(aggregate,
				"Great news, your chef accepted the booking.",
				"You can now arrange payment from your orders page."),
			true

	case ports.EventOrderRejected:
		return aggregate.CustomerID().String(),
			"Your booking was declined",
			renderBody(aggregate,
				"Unfortunately your chef declined this booking.",
				"Browse other chefs to find an alternative."),
			true

	case ports.EventOrderCompleted:
		return aggregate.CustomerID().String(),
			"Your booking is complete",
			renderBody(aggregate,
				"Your cooking session is done.",
				"We hope you enjoyed the meal."),
			true

	case ports.EventOrderExpired:
		return aggregate.CustomerID().String(),
			"Your booking request expired",
			renderBody(aggregate,
				"Your chef did not respond within the acceptance window.",
				"The booking was closed automatically; you have not been charged."),
			true
	}

	return "", "", "", false
}

func renderBody(aggregate *order.Order, lead, followup string) string {
	slot := aggregate.TimeSlot()
	return fmt.Sprintf(
		"<html><body>"+
			"<p>%s</p>"+
			"<p>Order <strong>%s</strong> for %d people on %s, %s.</p>"+
			"<p>Total: %s</p>"+
			"<p>%s</p>"+
			"</body></html>",
		lead,
		aggregate.ID().String(),
		aggregate.People(),
		aggregate.SelectedDate().Format("Monday, 2 January 2006"),
		slot.String(),
		aggregate.Total().StringFixed(2),
		followup,
	)
}
