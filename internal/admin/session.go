package admin

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/display"
	"github.com/vendkit/vendkit/pkg/statemachine"
)

// Admin session states.
const (
	StateListening = statemachine.StringState("listening")
	StateExited    = statemachine.StringState("exited")
)

const (
	eventEnd     = statemachine.StringEvent("end")
	eventTimeout = statemachine.StringEvent("timeout")
)

// Outcome is the terminal result of an admin session.
type Outcome string

const (
	OutcomeExited   Outcome = "exited"
	OutcomeTimedOut Outcome = "timed_out"
)

// InputGate acquires one line of operator input within a deadline.
type InputGate interface {
	AwaitLine(ctx context.Context, timeout time.Duration) (string, error)
}

// Session is the admin-mode state machine. It is deliberately laxer than
// the customer session: unrecognized input is ignored without comment.
type Session struct {
	id       uuid.UUID
	sm       *statemachine.Machine
	gate     InputGate
	store    *catalog.Store
	registry *Registry
	console  *display.Console
	log      *slog.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewSession builds an admin session with its own input deadline, which
// may differ from the customer session's.
func NewSession(gate InputGate, store *catalog.Store, registry *Registry, console *display.Console, log *slog.Logger, timeout time.Duration) *Session {
	id := uuid.New()
	return &Session{
		id: id,
		sm: statemachine.MustNew(StateListening,
			statemachine.WithTransition(StateListening, StateExited, eventEnd),
			statemachine.WithTransition(StateListening, StateExited, eventTimeout),
		),
		gate:     gate,
		store:    store,
		registry: registry,
		console:  console,
		log:      log.With(slog.String("admin_session_id", id.String())),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Run drives the admin loop until END or inactivity.
func (s *Session) Run(ctx context.Context) Outcome {
	s.log.Info("admin session started")

	for s.sm.Current() == StateListening {
		line, err := s.gate.AwaitLine(ctx, s.timeout)
		if err != nil {
			_ = s.sm.Fire(ctx, eventTimeout, nil)
			s.console.TimeoutBanner()
			s.log.Info("admin session timed out")
			return OutcomeTimedOut
		}
		s.handle(ctx, line)
	}

	s.log.Info("admin session ended")
	return OutcomeExited
}

func (s *Session) handle(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	command, args := strings.ToUpper(fields[0]), fields[1:]

	switch {
	case command == "AVAILABLE" && len(args) == 0:
		s.console.Catalog(s.store.Products(), true)

	case command == "ADDADMIN" && len(args) == 1:
		if s.registry.Add(args[0]) {
			s.console.AdminAdded(args[0])
			s.log.Info("admin identity added", slog.String("admin_id", args[0]))
		} else {
			s.console.AdminAlreadyExists(args[0])
		}

	case command == "REMOVEADMIN" && len(args) == 1:
		if s.registry.Remove(args[0]) {
			s.console.AdminRemoved(args[0])
			s.log.Info("admin identity removed", slog.String("admin_id", args[0]))
		} else {
			s.console.UnknownAdmin(args[0])
		}

	case command == "FILL" && len(args) == 1:
		// Already inside an authenticated session: no identity check.
		s.fill(args[0])

	case command == "END":
		s.console.AdminExit()
		_ = s.sm.Fire(ctx, eventEnd, nil)

	default:
		// Unrecognized admin input is silently ignored.
	}
}

func (s *Session) fill(token string) {
	p, err := s.store.Restock(token)
	if err != nil {
		s.console.RestockFailed(token)
		return
	}
	s.console.Restocked(token, s.now())
	s.log.Info("product restocked",
		slog.Int("product_id", p.ID),
		slog.String("product", p.Name),
	)
}
