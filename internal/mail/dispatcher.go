package mail

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mcamargo/planner/internal/domain"
)

// Delivery outcomes are counted rather than propagated: a failed email never
// fails the request that triggered it, so the counters and the structured
// logs are the only place failures show up.
var (
	mailEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_mail_enqueued_total",
		Help: "Emails accepted into the dispatch queue.",
	})
	mailDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_mail_dropped_total",
		Help: "Emails dropped because the dispatch queue was full.",
	})
	mailSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_mail_sent_total",
		Help: "Emails successfully handed to the SMTP server.",
	})
	mailFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_mail_failed_total",
		Help: "Emails that could not be delivered.",
	})
)

// sendTimeout bounds a single SMTP delivery attempt.
const sendTimeout = 30 * time.Second

// DispatcherConfig holds the settings for the asynchronous mail dispatcher.
type DispatcherConfig struct {
	// APIBaseURL is the public base URL of this API, used to build the
	// confirmation links embedded in emails.
	APIBaseURL string

	// QueueSize is the capacity of the dispatch queue. When the queue is
	// full, new messages are dropped (and counted) rather than blocking the
	// request that produced them.
	QueueSize int
}

// Dispatcher delivers emails asynchronously through a bounded queue and a
// single worker goroutine. Services hand messages off and return immediately;
// delivery failures are logged and counted, never returned to the caller.
type Dispatcher struct {
	mailer Mailer
	log    *slog.Logger
	cfg    DispatcherConfig

	queue chan Message
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher constructs a Dispatcher and starts its worker goroutine.
// Call Close during shutdown to drain the queue.
func NewDispatcher(mailer Mailer, log *slog.Logger, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		cfg:    cfg,
		queue:  make(chan Message, cfg.QueueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// TripCreated enqueues the confirmation-kickoff email sent to the trip owner.
func (d *Dispatcher) TripCreated(trip domain.Trip, owner domain.Participant) {
	confirmURL := fmt.Sprintf("%s/trips/%s/confirm", d.cfg.APIBaseURL, trip.ID)
	msg, err := tripCreatedMessage(trip, owner, confirmURL)
	if err != nil {
		d.log.Error("render trip created email", "trip_id", trip.ID, "error", err)
		return
	}
	d.enqueue(msg)
}

// PresenceRequested enqueues a confirm-your-presence email for one
// participant, used both when the owner confirms the trip and when a
// participant is invited afterwards.
func (d *Dispatcher) PresenceRequested(trip domain.Trip, participant domain.Participant) {
	confirmURL := fmt.Sprintf("%s/participants/%s/confirm", d.cfg.APIBaseURL, participant.ID)
	msg, err := inviteMessage(trip, participant, confirmURL)
	if err != nil {
		d.log.Error("render invite email", "participant_id", participant.ID, "error", err)
		return
	}
	d.enqueue(msg)
}

// enqueue adds a message to the queue without blocking. A full queue drops
// the message; losing an invite email is preferable to stalling the request.
func (d *Dispatcher) enqueue(msg Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		mailDropped.Inc()
		d.log.Warn("mail dispatcher closed, dropping message", "to", msg.To, "subject", msg.Subject)
		return
	}

	select {
	case d.queue <- msg:
		mailEnqueued.Inc()
	default:
		mailDropped.Inc()
		d.log.Warn("mail queue full, dropping message", "to", msg.To, "subject", msg.Subject)
	}
}

// run is the worker loop. It exits when the queue is closed and drained.
func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.mailer.Send(ctx, msg)
		cancel()

		if err != nil {
			mailFailed.Inc()
			d.log.Error("mail delivery failed", "to", msg.To, "subject", msg.Subject, "error", err)
			continue
		}
		mailSent.Inc()
		d.log.Info("mail delivered", "to", msg.To, "subject", msg.Subject)
	}
}

// Close stops accepting new messages and blocks until every queued message
// has been attempted. Safe to call once during shutdown.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
