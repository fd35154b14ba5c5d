package obs

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/zstore/storefront/internal/events"
)

func TestMetricsNotifier(t *testing.T) {
	MustRegisterDomainMetrics("storefront_test", prometheus.NewRegistry())

	bus := &events.Bus{Notifiers: []events.Notifier{MetricsNotifier()}}
	before := testutil.ToFloat64(CheckoutTotal)

	_, err := bus.Emit(context.Background(), events.TopicCheckout, nil)
	require.NoError(t, err)
	_, err = bus.Emit(context.Background(), events.TopicItemAdded, map[string]any{"upc": "001"})
	require.NoError(t, err)

	require.Equal(t, before+1, testutil.ToFloat64(CheckoutTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(CartItemsAddedTotal.WithLabelValues("ok")))
}
