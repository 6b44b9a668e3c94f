package mailer

import (
	"context"
	"sync"
	"time"

	"licitaya-api/internal/entity"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const sendTimeout = 15 * time.Second

type job struct {
	id    uuid.UUID
	email entity.VerificationEmail
}

// Dispatcher runs email delivery off the request path. Jobs are enqueued
// only after the corresponding user row has been committed, and a failed
// send never affects the already-produced response: it is logged and
// dropped, delivery is best-effort.
type Dispatcher struct {
	sender Sender
	jobs   chan job
	wg     sync.WaitGroup
	log    zerolog.Logger
}

func NewDispatcher(sender Sender, buffer int, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		jobs:   make(chan job, buffer),
		log:    log,
	}
}

// Start launches the worker goroutine. Call Stop to drain and wait.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for j := range d.jobs {
			d.send(j)
		}
	}()
}

func (d *Dispatcher) send(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := d.sender.SendVerification(ctx, j.email); err != nil {
		d.log.Error().Err(err).
			Str("job_id", j.id.String()).
			Str("email", j.email.Email).
			Msg("verification email dispatch failed")

		return
	}

	d.log.Info().
		Str("job_id", j.id.String()).
		Str("email", j.email.Email).
		Msg("verification email dispatched")
}

// Enqueue never blocks the caller: when the buffer is full the job is
// dropped and logged, the user can request a resend.
func (d *Dispatcher) Enqueue(email entity.VerificationEmail) {
	j := job{id: uuid.New(), email: email}

	select {
	case d.jobs <- j:
	default:
		d.log.Warn().
			Str("job_id", j.id.String()).
			Str("email", email.Email).
			Msg("mail queue full, verification email dropped")
	}
}

// Stop closes the queue and waits for the worker to finish in-flight jobs.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}
