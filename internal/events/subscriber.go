// Package events is the message-bus trigger: a NATS message on the
// cleanup subject fires the same run the HTTP endpoint does. The message
// payload is ignored and nothing is published back.
package events

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/teableio/devreaper/internal/logger"
	"github.com/teableio/devreaper/internal/reaper"
)

// Runner is the shared orchestration both triggers delegate to.
type Runner interface {
	Run(ctx context.Context) (*reaper.RunSummary, error)
}

// Subscriber holds a NATS subscription on the cleanup trigger subject
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	runner  Runner
	subject string
	log     logger.Logger
}

// Connect dials NATS and subscribes to the trigger subject
func Connect(url, subject string, runner Runner, log logger.Logger) (*Subscriber, error) {
	opts := []nats.Option{
		nats.Name("devreaper"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Error("nats disconnected", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("nats reconnected")
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}

	s := &Subscriber{
		nc:      nc,
		runner:  runner,
		subject: subject,
		log:     log,
	}
	s.sub, err = nc.Subscribe(subject, s.handle)
	if err != nil {
		nc.Close()
		return nil, err
	}

	log.WithField("subject", subject).Info("subscribed to cleanup trigger")
	return s, nil
}

// handle runs one cleanup pass. Fire and forget: the caller gets nothing
// back; the result lives only in the logs.
func (s *Subscriber) handle(_ *nats.Msg) {
	summary, err := s.runner.Run(context.Background())
	if err != nil {
		s.log.Error("cleanup run failed", err)
		return
	}
	s.log.Info("cleanup complete: " + summary.Summary)
}

// Close drains the subscription and connection
func (s *Subscriber) Close() {
	if s.sub != nil {
		_ = s.sub.Unsubscribe()
	}
	if s.nc != nil {
		_ = s.nc.Drain()
		s.nc.Close()
	}
}
