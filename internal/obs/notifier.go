package obs

import (
	"context"

	"github.com/zstore/storefront/internal/events"
)

// MetricsNotifier bridges the event bus to the Prometheus domain counters.
// MustRegisterDomainMetrics must have run first.
func MetricsNotifier() events.NotifierFunc {
	return func(ctx context.Context, ev events.Event) error {
		switch ev.Topic {
		case events.TopicItemAdded:
			CartItemsAddedTotal.WithLabelValues("ok").Inc()
		case events.TopicDiscountApplied:
			DiscountAppliedTotal.WithLabelValues("ok").Inc()
		case events.TopicCheckout:
			CheckoutTotal.Inc()
		}
		return nil
	}
}
