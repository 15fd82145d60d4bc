package notifier

import (
	"sync"

	"github.com/api-sage/bank-ledger-service/internal/domain"
	"github.com/api-sage/bank-ledger-service/internal/logger"
)

const defaultSubscriberBuffer = 16

// Bus is an in-process pub/sub for transfer events. Publishing never blocks:
// a subscriber whose buffer is full misses the event.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]chan domain.TransferEvent
	nextID      int
}

// NewBus returns a bus with no subscribers. Publishing to an empty bus is a
// no-op, so the bus can be wired unconditionally and consumers (a websocket
// bridge, an in-process projection) attach later via Subscribe.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[int]chan domain.TransferEvent)}
}

// Subscribe registers a listener and returns its event channel together with
// an unsubscribe func. Unsubscribing closes the channel.
func (b *Bus) Subscribe() (<-chan domain.TransferEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan domain.TransferEvent, defaultSubscriberBuffer)
	b.subscribers[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if existing, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(existing)
		}
	}

	return ch, unsubscribe
}

func (b *Bus) NotifyTransfer(event domain.TransferEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			logger.Info("event bus dropped transfer event for slow subscriber", logger.Fields{
				"subscriberId": id,
				"eventId":      event.EventID,
			})
		}
	}
}
