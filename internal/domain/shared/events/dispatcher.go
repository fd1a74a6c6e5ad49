package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/talento-hq/talento/internal/shared/goroutine"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const defaultBufferSize = 100

var (
	ErrDispatcherStopped = errors.New("event dispatcher is not running")
	ErrBufferFull        = errors.New("event buffer is full")
)

// InMemoryEventDispatcher queues events on a buffered channel and runs each
// subscribed handler on its own goroutine. Handler errors and panics are
// logged and never reach the publisher.
type InMemoryEventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
	running  bool

	eventCh chan DomainEvent
	stopCh  chan struct{}
	loopWG  sync.WaitGroup
	// handlerWG lets Stop wait for in-flight notifications.
	handlerWG sync.WaitGroup

	logger logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, logger logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		eventCh:  make(chan DomainEvent, bufferSize),
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Publish enqueues event without blocking.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.running {
		return ErrDispatcherStopped
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return errors.New("event type cannot be empty")
	}
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return errors.New("event dispatcher is already running")
	}
	d.running = true

	d.loopWG.Add(1)
	go func() {
		defer d.loopWG.Done()
		d.loop()
	}()
	return nil
}

// Stop delivers what is still queued, then waits for running handlers.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return ErrDispatcherStopped
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.loopWG.Wait()
	d.handlerWG.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) loop() {
	for {
		select {
		case event := <-d.eventCh:
			d.dispatch(event)
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *InMemoryEventDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.handlerWG.Add(1)
		goroutine.SafeGo(d.logger, "event-handler:"+event.GetEventType(), func() {
			defer d.handlerWG.Done()
			if err := h.Handle(event); err != nil {
				d.logger.Errorw("event handler failed",
					"event_type", event.GetEventType(),
					"aggregate_id", event.GetAggregateID(),
					"error", err,
				)
			}
		})
	}
}
