package notify

import (
	"context"
	"sync"
	"time"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"go.uber.org/zap"
)

const (
	flushBufLen = 10
	queueLen    = 256

	tickerTime     = 2 * time.Second
	publishTimeout = 5 * time.Second
	stopTimeout    = 5 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, events entity.Events) error
	Close() error
}

// Notifier hands committed lifecycle events to a Publisher in batches from a
// background worker. Delivery is best effort: a full queue drops the event.
type Notifier struct {
	publisher Publisher
	input     chan entity.Event
	done      chan struct{}
	mutex     sync.RWMutex
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func New(publisher Publisher) *Notifier {
	instance := &Notifier{
		publisher: publisher,
		input:     make(chan entity.Event, queueLen),
		done:      make(chan struct{}),
	}

	instance.wg.Add(1)
	go func() {
		defer instance.wg.Done()
		instance.publishEvents()
	}()

	return instance
}

// Notify never blocks. Events after Stop and events that do not fit the
// queue are dropped with a warning.
func (n *Notifier) Notify(event entity.Event) {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	select {
	case <-n.done:
		zap.L().Warn("event notifier has been stopped, dropping event", zap.String("type", string(event.Type)), zap.String("key", event.Key()))
		return
	default:
	}

	select {
	case n.input <- event:
	default:
		zap.L().Warn("event queue is full, dropping event", zap.String("type", string(event.Type)), zap.String("key", event.Key()))
	}
}

func (n *Notifier) Stop() {
	n.stopOnce.Do(func() {
		n.mutex.Lock()
		close(n.done)
		n.mutex.Unlock()
	})

	ready := make(chan struct{})
	go func() {
		defer close(ready)
		n.wg.Wait()
	}()

	select {
	case <-time.After(stopTimeout):
		zap.L().Error("timeout while publishing remaining events while shutting down")
	case <-ready:
		zap.L().Info("remaining events have been published while shutting down")
	}

	if err := n.publisher.Close(); err != nil {
		zap.L().Error("error while closing event publisher", zap.Error(err))
	}
}

func (n *Notifier) publishEvents() {
	ticker := time.NewTicker(tickerTime)
	defer ticker.Stop()

	events := make(entity.Events, 0, flushBufLen)

	flushEvents := func() {
		if len(events) != 0 {
			n.publish(events)
			events = events[:0]
		}
	}

	for {
		select {
		case <-ticker.C:
			flushEvents()
		case <-n.done:
			for {
				select {
				case event := <-n.input:
					events = append(events, event)
					if len(events) == cap(events) {
						flushEvents()
					}
				default:
					flushEvents()
					zap.L().Info("event notifier work has finished")
					return
				}
			}
		case event := <-n.input:
			events = append(events, event)
			if len(events) == cap(events) {
				flushEvents()
			}
		}
	}
}

func (n *Notifier) publish(events entity.Events) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	batch := append(entity.Events(nil), events...)
	if err := n.publisher.Publish(ctx, batch); err != nil {
		zap.L().Error("error while publishing lifecycle events", zap.Error(err), zap.Int("count", len(batch)))
	}
}
