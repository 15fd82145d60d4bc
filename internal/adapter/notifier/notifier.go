package notifier

import "github.com/api-sage/bank-ledger-service/internal/domain"

// Noop discards every event. Used when no listener transport is configured.
type Noop struct{}

func (Noop) NotifyTransfer(domain.TransferEvent) {}

// Fanout dispatches each event to every wrapped notifier in order.
type Fanout struct {
	notifiers []domain.TransferNotifier
}

func NewFanout(notifiers ...domain.TransferNotifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) NotifyTransfer(event domain.TransferEvent) {
	for _, n := range f.notifiers {
		if n != nil {
			n.NotifyTransfer(event)
		}
	}
}
