package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonbook/salon-api/internal/api/metrics"
	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrStopped is returned by Enqueue once the workers have shut down.
var ErrStopped = errors.New("reminder dispatcher stopped")

// Dispatcher routes reminders to a fixed set of workers using consistent
// hashing on the appointment id, so one appointment is never reminded by two
// workers at once.
type Dispatcher struct {
	workers []chan domain.Reminder
	stopped chan struct{}
	service ports.ReminderService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ReminderService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.Reminder, numWorkers),
		stopped: make(chan struct{}),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Reminder, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which Enqueue fails with ErrStopped.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Enqueue sends a reminder to the worker responsible for its appointment.
// When that worker's buffer is full it waits until there is room, ctx is done
// or the dispatcher stops.
func (d *Dispatcher) Enqueue(ctx context.Context, r domain.Reminder) error {
	idx := d.shardIndex(r.AppointmentID)
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}
	select {
	case d.workers[idx] <- r:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
	metrics.RemindersQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// EnqueueBatch enqueues reminders in order and reports how many were queued
// before the first failure.
func (d *Dispatcher) EnqueueBatch(ctx context.Context, reminders []domain.Reminder) (int, error) {
	for i, r := range reminders {
		if err := d.Enqueue(ctx, r); err != nil {
			return i, err
		}
	}
	return len(reminders), nil
}

// shardIndex maps an appointment id deterministically to a worker index.
func (d *Dispatcher) shardIndex(appointmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appointmentID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Reminder) {
	depth := metrics.RemindersQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))

			start := time.Now()
			err := d.service.Deliver(ctx, r)
			metrics.ReminderDeliveryDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.RemindersTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("appointment_id", r.AppointmentID).
					Int("worker_id", id).
					Msg("reminder delivery failed")
				continue
			}
			metrics.RemindersTotal.WithLabelValues("sent").Inc()
		}
	}
}
