// Package machine runs the supervisory loop: one fresh transaction
// session per customer, for the lifetime of the process.
package machine

import (
	"context"
	"log/slog"

	"github.com/vendkit/vendkit/internal/admin"
	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/display"
	"github.com/vendkit/vendkit/internal/session"
)

// Machine owns the process-lifetime state (inventory, admin registry) and
// threads it into each session explicitly. Running sessions one at a time
// is what serializes access to that state; there are no locks.
type Machine struct {
	store   *catalog.Store
	admins  *admin.Registry
	gate    session.InputGate
	console *display.Console
	log     *slog.Logger
	cfg     session.Config
}

func New(store *catalog.Store, admins *admin.Registry, gate session.InputGate, console *display.Console, log *slog.Logger, cfg session.Config) *Machine {
	return &Machine{
		store:   store,
		admins:  admins,
		gate:    gate,
		console: console,
		log:     log,
		cfg:     cfg,
	}
}

// Run loops sessions until QUIT or context cancellation. A nil return
// means a clean operator-requested exit.
func (m *Machine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.console.Welcome()
		s := session.New(m.gate, m.store, m.admins, m.console, m.log, m.cfg)

		switch s.Run(ctx) {
		case session.OutcomeQuit:
			m.log.Info("operator quit")
			return nil
		case session.OutcomeTimedOut:
			m.console.TimeoutBanner()
		case session.OutcomeCancelled:
			m.console.CancelBanner()
		case session.OutcomeCompleted:
			// Next customer.
		}
	}
}
