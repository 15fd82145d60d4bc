package notifier_test

import (
	"testing"
	"time"

	"github.com/api-sage/bank-ledger-service/internal/adapter/notifier"
	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := notifier.NewBus()
	first, unsubFirst := bus.Subscribe()
	defer unsubFirst()
	second, unsubSecond := bus.Subscribe()
	defer unsubSecond()

	event := domain.TransferEvent{
		EventID:     "evt-1",
		AccountFrom: 1,
		AccountTo:   2,
		Amount:      decimal.NewFromInt(30),
	}
	bus.NotifyTransfer(event)

	for _, ch := range []<-chan domain.TransferEvent{first, second} {
		select {
		case got := <-ch:
			assert.Equal(t, "evt-1", got.EventID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBusPublishWithoutSubscribersIsNoOp(t *testing.T) {
	bus := notifier.NewBus()

	bus.NotifyTransfer(domain.TransferEvent{EventID: "evt-0"})

	ch, unsub := bus.Subscribe()
	defer unsub()
	select {
	case got := <-ch:
		t.Fatalf("late subscriber received event %q", got.EventID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := notifier.NewBus()
	ch, unsubscribe := bus.Subscribe()

	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Unsubscribing twice must not panic.
	unsubscribe()
}

func TestBusPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	bus := notifier.NewBus()
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	// Overflow the subscriber buffer without draining it.
	for i := 0; i < 64; i++ {
		bus.NotifyTransfer(domain.TransferEvent{EventID: "evt"})
	}

	// The subscriber still holds the buffered prefix.
	require.NotEmpty(t, ch)
}

func TestFanoutDispatchesToAll(t *testing.T) {
	bus := notifier.NewBus()
	ch, unsubscribe := bus.Subscribe()
	defer unsubscribe()

	fanout := notifier.NewFanout(notifier.Noop{}, nil, bus)
	fanout.NotifyTransfer(domain.TransferEvent{EventID: "evt-2"})

	select {
	case got := <-ch:
		assert.Equal(t, "evt-2", got.EventID)
	case <-time.After(time.Second):
		t.Fatal("fanout did not reach the bus")
	}
}
