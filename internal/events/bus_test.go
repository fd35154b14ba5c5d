package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEmitFansOut(t *testing.T) {
	var got []Event
	bus := &Bus{
		Now: func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		Notifiers: []Notifier{
			NotifierFunc(func(ctx context.Context, ev Event) error {
				got = append(got, ev)
				return nil
			}),
			NotifierFunc(func(ctx context.Context, ev Event) error {
				got = append(got, ev)
				return nil
			}),
		},
	}

	ev, err := bus.Emit(context.Background(), TopicItemAdded, map[string]any{"upc": "001"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, TopicItemAdded, ev.Topic)
	require.Equal(t, ev.ID, got[0].ID)
	require.Equal(t, ev.OccurredAt, got[1].OccurredAt)
}

func TestEmitRequiresTopic(t *testing.T) {
	bus := &Bus{}
	_, err := bus.Emit(context.Background(), "  ", nil)
	require.Error(t, err)
}

func TestEmitJoinsNotifierErrors(t *testing.T) {
	boom := errors.New("boom")
	delivered := false
	bus := &Bus{Notifiers: []Notifier{
		NotifierFunc(func(ctx context.Context, ev Event) error { return boom }),
		NotifierFunc(func(ctx context.Context, ev Event) error { delivered = true; return nil }),
	}}

	_, err := bus.Emit(context.Background(), TopicCheckout, nil)
	require.ErrorIs(t, err, boom)
	require.True(t, delivered, "fan-out must continue past a failing notifier")
}
