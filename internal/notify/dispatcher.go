package notify

import (
	"context"
	"sync"
	"time"

	"github.com/unique-reservas/booking-service/internal/domain"
)

// taskKind вид задачи уведомления
type taskKind int

const (
	taskBookingConfirmed taskKind = iota
	taskBookingCancelled
)

// task задача в очереди уведомлений
type task struct {
	kind    taskKind
	booking *domain.Booking
}

// attemptTimeout таймаут одной попытки доставки
const attemptTimeout = 30 * time.Second

// Config настройки диспетчера уведомлений
type Config struct {
	QueueSize  int
	MaxRetries int
	RetryDelay time.Duration
	OwnerEmail string
	BaseURL    string
}

// Dispatcher delivers side effects of booking lifecycle transitions (emails,
// calendar events) from a bounded queue, decoupled from the request cycle.
// Delivery failures are retried a bounded number of times and then logged and
// dropped; they never affect the booking itself.
type Dispatcher struct {
	cfg      Config
	mailer   Mailer
	calendar Calendar
	repo     BookingRepository
	log      Logger

	tasks chan task
	wg    sync.WaitGroup
}

// New создает новый экземпляр диспетчера уведомлений.
// mailer и calendar могут быть nil, если интеграция выключена.
func New(cfg Config, mailer Mailer, calendar Calendar, repo BookingRepository, log Logger) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		mailer:   mailer,
		calendar: calendar,
		repo:     repo,
		log:      log,
		tasks:    make(chan task, cfg.QueueSize),
	}
}

// Start launches the delivery worker
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for t := range d.tasks {
			d.process(t)
		}
	}()
}

// Stop drains the queue and waits for in-flight deliveries to finish
func (d *Dispatcher) Stop() {
	close(d.tasks)
	d.wg.Wait()
}

// BookingConfirmed enqueues the post-creation side effects. Never blocks: if
// the queue is full the task is dropped with an error log.
func (d *Dispatcher) BookingConfirmed(booking *domain.Booking) {
	d.enqueue(task{kind: taskBookingConfirmed, booking: snapshot(booking)})
}

// BookingCancelled enqueues the post-cancellation side effects
func (d *Dispatcher) BookingCancelled(booking *domain.Booking) {
	d.enqueue(task{kind: taskBookingCancelled, booking: snapshot(booking)})
}

func (d *Dispatcher) enqueue(t task) {
	select {
	case d.tasks <- t:
	default:
		d.log.Error("notify: queue full, dropping task kind=%d booking=%s", t.kind, t.booking.BookingNumber)
	}
}

func (d *Dispatcher) process(t task) {
	switch t.kind {
	case taskBookingConfirmed:
		d.processConfirmed(t.booking)
	case taskBookingCancelled:
		d.processCancelled(t.booking)
	}
}

func (d *Dispatcher) processConfirmed(b *domain.Booking) {
	if d.mailer != nil {
		subject, html, text := confirmationEmail(b, d.cfg.BaseURL)
		d.withRetry("confirmation email", b.BookingNumber, func(ctx context.Context) error {
			_, err := d.mailer.Send(ctx, b.CustomerEmail, subject, html, text)
			return err
		})

		if d.cfg.OwnerEmail != "" {
			subject, html, text := ownerEmail(b)
			d.withRetry("owner email", b.BookingNumber, func(ctx context.Context) error {
				_, err := d.mailer.Send(ctx, d.cfg.OwnerEmail, subject, html, text)
				return err
			})
		}
	}

	if d.calendar != nil {
		var eventIDs string
		ok := d.withRetry("calendar events", b.BookingNumber, func(ctx context.Context) error {
			ids, err := d.calendar.CreateEvents(ctx, b)
			if err != nil {
				return err
			}
			eventIDs = ids
			return nil
		})

		if ok && eventIDs != "" {
			d.withRetry("store calendar event ids", b.BookingNumber, func(ctx context.Context) error {
				return d.repo.SetCalendarEventIDs(ctx, b.ID, eventIDs)
			})
		}
	}
}

func (d *Dispatcher) processCancelled(b *domain.Booking) {
	if d.mailer != nil {
		subject, html, text := cancellationEmail(b)
		d.withRetry("cancellation email", b.BookingNumber, func(ctx context.Context) error {
			_, err := d.mailer.Send(ctx, b.CustomerEmail, subject, html, text)
			return err
		})
	}

	if d.calendar != nil && b.CalendarEventIDs != nil && *b.CalendarEventIDs != "" {
		eventIDs := *b.CalendarEventIDs
		d.withRetry("delete calendar events", b.BookingNumber, func(ctx context.Context) error {
			return d.calendar.DeleteEvents(ctx, eventIDs)
		})
	}
}

// withRetry runs fn up to MaxRetries times with a fixed delay between
// attempts. Returns true on success; the final failure is logged and dropped.
func (d *Dispatcher) withRetry(op, bookingNumber string, fn func(ctx context.Context) error) bool {
	var lastErr error

	for attempt := 1; attempt <= d.cfg.MaxRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
		lastErr = fn(ctx)
		cancel()

		if lastErr == nil {
			return true
		}

		d.log.Warn("notify: %s failed for booking=%s (attempt %d/%d): %v",
			op, bookingNumber, attempt, d.cfg.MaxRetries, lastErr)

		if attempt < d.cfg.MaxRetries {
			time.Sleep(d.cfg.RetryDelay)
		}
	}

	d.log.Error("notify: %s dropped for booking=%s after %d attempts: %v",
		op, bookingNumber, d.cfg.MaxRetries, lastErr)
	return false
}

// snapshot copies the booking so the worker never observes later mutations
func snapshot(b *domain.Booking) *domain.Booking {
	copied := *b
	copied.TimeSlots = make([]string, len(b.TimeSlots))
	copy(copied.TimeSlots, b.TimeSlots)
	return &copied
}
