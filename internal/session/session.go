// Package session implements the customer transaction state machine:
// browsing, quantity selection, payment, and the terminal outcomes with
// their rollback semantics.
package session

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vendkit/vendkit/internal/admin"
	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/display"
	"github.com/vendkit/vendkit/internal/ledger"
	"github.com/vendkit/vendkit/pkg/logger"
	"github.com/vendkit/vendkit/pkg/statemachine"
)

// Transaction session states. Browsing is initial; completed, cancelled
// and timed_out are terminal.
const (
	StateBrowsing  = statemachine.StringState("browsing")
	StateQuantity  = statemachine.StringState("quantity_selection")
	StatePayment   = statemachine.StringState("awaiting_payment")
	StateCompleted = statemachine.StringState("completed")
	StateCancelled = statemachine.StringState("cancelled")
	StateTimedOut  = statemachine.StringState("timed_out")
)

const (
	eventSelect   = statemachine.StringEvent("select_product")
	eventAccept   = statemachine.StringEvent("quantity_accepted")
	eventCheckout = statemachine.StringEvent("checkout")
	eventPaid     = statemachine.StringEvent("pay_in_full")
	eventCancel   = statemachine.StringEvent("cancel")
	eventTimeout  = statemachine.StringEvent("timeout")
)

// Outcome is the terminal result of a customer session. Quit is distinct
// from the session-terminal states: it ends the whole process.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeTimedOut  Outcome = "timed_out"
	OutcomeQuit      Outcome = "quit"
)

// InputGate acquires one line of operator input within a deadline.
type InputGate interface {
	AwaitLine(ctx context.Context, timeout time.Duration) (string, error)
}

// Config carries the session's input deadlines.
type Config struct {
	// InputTimeout bounds every customer input read.
	InputTimeout time.Duration
	// AdminInputTimeout is handed to nested admin sessions.
	AdminInputTimeout time.Duration
}

// Session is one customer's end-to-end interaction. Build a fresh Session
// per customer; terminal outcomes leave the inventory exactly as the
// session found it (abort paths) or exactly one purchase lighter
// (completed path).
type Session struct {
	id      uuid.UUID
	sm      *statemachine.Machine
	gate    InputGate
	store   *catalog.Store
	admins  *admin.Registry
	console *display.Console
	log     *slog.Logger
	cfg     Config
	now     func() time.Time

	reservations []catalog.Reservation
	paid         ledger.Ledger
	pending      *catalog.Product
	grandTotal   int64
}

// New builds a session over explicitly injected collaborators; nothing is
// shared ambiently between sessions except the store and registry.
func New(gate InputGate, store *catalog.Store, admins *admin.Registry, console *display.Console, log *slog.Logger, cfg Config) *Session {
	id := uuid.New()
	s := &Session{
		id:      id,
		gate:    gate,
		store:   store,
		admins:  admins,
		console: console,
		log:     log.With(slog.String("session_id", id.String())),
		cfg:     cfg,
		now:     time.Now,
	}

	s.sm = statemachine.MustNew(StateBrowsing,
		statemachine.WithTransition(StateBrowsing, StateQuantity, eventSelect),
		statemachine.WithTransition(StateQuantity, StateBrowsing, eventAccept),
		statemachine.WithTransition(StateBrowsing, StatePayment, eventCheckout,
			statemachine.WithGuard(func(ctx context.Context, from statemachine.State, event statemachine.Event, data any) bool {
				return len(s.reservations) > 0
			}),
		),
		statemachine.WithTransition(StatePayment, StateCompleted, eventPaid,
			statemachine.WithAction(s.commit),
		),
		statemachine.WithTransition(StateBrowsing, StateCancelled, eventCancel,
			statemachine.WithAction(s.rollback),
		),
		statemachine.WithTransition(StateQuantity, StateCancelled, eventCancel,
			statemachine.WithAction(s.rollback),
		),
		statemachine.WithTransition(StatePayment, StateCancelled, eventCancel,
			statemachine.WithAction(s.rollback),
		),
		statemachine.WithTransition(StateBrowsing, StateTimedOut, eventTimeout,
			statemachine.WithAction(s.rollback),
		),
		statemachine.WithTransition(StateQuantity, StateTimedOut, eventTimeout,
			statemachine.WithAction(s.rollback),
		),
		statemachine.WithTransition(StatePayment, StateTimedOut, eventTimeout,
			statemachine.WithAction(s.rollback),
		),
	)
	return s
}

// Current exposes the session's current state.
func (s *Session) Current() statemachine.State {
	return s.sm.Current()
}

// Run drives the session to a terminal outcome.
func (s *Session) Run(ctx context.Context) Outcome {
	s.log.Info("session started")

	for {
		switch s.sm.Current() {
		case StateBrowsing:
			if quit := s.browse(ctx); quit {
				s.log.Info("session ended", slog.String("outcome", string(OutcomeQuit)))
				return OutcomeQuit
			}
		case StateQuantity:
			s.selectQuantity(ctx)
		case StatePayment:
			s.collectPayment(ctx)
		case StateCompleted:
			s.log.Info("session ended", slog.String("outcome", string(OutcomeCompleted)))
			return OutcomeCompleted
		case StateCancelled:
			s.log.Info("session ended", slog.String("outcome", string(OutcomeCancelled)))
			return OutcomeCancelled
		case StateTimedOut:
			s.log.Info("session ended", slog.String("outcome", string(OutcomeTimedOut)))
			return OutcomeTimedOut
		}
	}
}

// browse renders the catalog, reads one line, and dispatches it. Returns
// true only for QUIT, which terminates the whole process.
func (s *Session) browse(ctx context.Context) bool {
	s.console.Catalog(s.store.Products(), false)
	s.console.Instructions()

	line, err := s.gate.AwaitLine(ctx, s.cfg.InputTimeout)
	if err != nil {
		s.fire(ctx, eventTimeout)
		return false
	}
	return s.dispatch(ctx, line)
}

func (s *Session) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)

	cmd := cmdSelector
	var args []string
	if len(fields) > 0 {
		cmd = parseCommand(fields[0])
		args = fields[1:]
	}

	switch cmd {
	case cmdHelp:
		if len(args) != 0 {
			s.console.InvalidSyntax()
			return false
		}
		s.console.Help()

	case cmdCancel:
		if len(args) != 0 {
			s.console.InvalidSyntax()
			return false
		}
		s.fire(ctx, eventCancel)

	case cmdAdmin:
		if len(args) != 1 {
			s.console.InvalidSyntax()
			return false
		}
		s.enterAdmin(ctx, args[0])

	case cmdFill:
		if len(args) != 2 {
			s.console.InvalidSyntax()
			return false
		}
		s.fill(args[0], args[1])

	case cmdQuit:
		if len(args) != 0 {
			s.console.InvalidSyntax()
			return false
		}
		s.console.Farewell()
		return true

	case cmdEnd:
		if len(args) != 0 {
			s.console.InvalidSyntax()
			return false
		}
		s.checkout(ctx)

	case cmdSelector:
		s.selectProduct(ctx, line)
	}

	return false
}

// enterAdmin suspends the transaction and runs an admin session to
// completion. Browsing state, reservations, and the ledger resume
// unchanged afterwards.
func (s *Session) enterAdmin(ctx context.Context, id string) {
	if !s.admins.Contains(id) {
		s.console.UnknownAdmin(id)
		return
	}
	s.console.AdminWelcome(id)
	s.log.Info("admin mode entered", slog.String("admin_id", id))

	admin.NewSession(s.gate, s.store, s.admins, s.console, s.log, s.cfg.AdminInputTimeout).Run(ctx)
}

// fill restocks directly from browsing, bypassing admin mode, after
// authenticating the supplied identity.
func (s *Session) fill(productToken, id string) {
	if !s.admins.Contains(id) {
		s.console.UnknownAdmin(id)
		return
	}
	s.console.RefillAuthenticated()

	p, err := s.store.Restock(productToken)
	if err != nil {
		s.console.RestockFailed(productToken)
		return
	}
	s.console.Restocked(productToken, s.now())
	s.log.Info("product restocked from browsing",
		slog.Int("product_id", p.ID),
		slog.String("admin_id", id),
	)
}

func (s *Session) checkout(ctx context.Context) {
	if len(s.reservations) == 0 {
		s.console.NothingSelected()
		return
	}
	s.grandTotal = catalog.GrandTotal(s.reservations)
	s.console.GrandTotal(s.grandTotal)
	s.fire(ctx, eventCheckout)
}

// selectProduct treats the raw line as a product selector: integer id
// first, case-insensitive name otherwise.
func (s *Session) selectProduct(ctx context.Context, raw string) {
	p, err := s.store.Lookup(strings.TrimSpace(raw))
	if err != nil {
		s.console.InvalidSelection()
		return
	}
	if p.Quantity < 1 {
		s.console.OutOfStock(p.Name)
		return
	}

	s.pending = p
	s.console.QuantityPrompt(p)
	s.fire(ctx, eventSelect)
}

// selectQuantity handles one input in the quantity stage. Recoverable
// errors re-prompt by leaving the state unchanged; the outer loop calls
// back in.
func (s *Session) selectQuantity(ctx context.Context) {
	line, err := s.gate.AwaitLine(ctx, s.cfg.InputTimeout)
	if err != nil {
		s.fire(ctx, eventTimeout)
		return
	}
	if strings.EqualFold(strings.TrimSpace(line), "CANCEL") {
		s.fire(ctx, eventCancel)
		return
	}

	qty, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.console.QuantityNotNumeric()
		return
	}
	if qty <= 0 {
		s.console.QuantityNotPositive()
		return
	}
	if err := s.store.Reserve(s.pending, qty); err != nil {
		s.console.NotEnoughStock()
		return
	}

	s.merge(s.pending, qty)
	s.console.Selections(s.reservations)
	s.pending = nil
	s.fire(ctx, eventAccept)
}

// merge folds a new reservation into the session's set: reservations for
// the same product accumulate into one line.
func (s *Session) merge(p *catalog.Product, qty int) {
	for i := range s.reservations {
		if s.reservations[i].Product == p {
			s.reservations[i].Quantity += qty
			return
		}
	}
	s.reservations = append(s.reservations, catalog.Reservation{Product: p, Quantity: qty})
}

// collectPayment handles one input in the payment stage.
func (s *Session) collectPayment(ctx context.Context) {
	line, err := s.gate.AwaitLine(ctx, s.cfg.InputTimeout)
	if err != nil {
		// Accumulated payment is forfeit on inactivity; only the
		// inventory is restored.
		s.fire(ctx, eventTimeout)
		return
	}
	if strings.EqualFold(strings.TrimSpace(line), "CANCEL") {
		s.console.Refund(s.paid.Total())
		s.fire(ctx, eventCancel)
		return
	}

	cents, err := ledger.ParseAmount(strings.TrimSpace(line))
	if err != nil {
		s.console.PaymentNotNumeric()
		return
	}
	if err := s.paid.Add(cents); err != nil {
		s.console.AcceptedDenominations()
		return
	}

	if s.paid.Total() < s.grandTotal {
		s.console.Shortfall(s.paid.Total(), s.grandTotal-s.paid.Total())
		return
	}

	s.console.PaymentSuccessful()
	s.console.Change(s.paid.Total() - s.grandTotal)
	s.fire(ctx, eventPaid)
	s.console.Purchased(s.reservations)
}

// rollback is the abort-path action: every live reservation is released,
// restoring each product's quantity to its session-start value, and the
// ledger is cleared. No-op on an empty reservation set.
func (s *Session) rollback(ctx context.Context, from, to statemachine.State, event statemachine.Event, data any) error {
	for _, r := range s.reservations {
		s.store.Release(r.Product, r.Quantity)
		s.log.Debug("reservation released",
			slog.Int("product_id", r.Product.ID),
			slog.Int("quantity", r.Quantity),
		)
	}
	s.reservations = nil
	s.paid.Reset()
	return nil
}

// commit is the success-path action: reservations become final sales.
// Quantities were already withdrawn at reservation time, so the net
// inventory effect of the whole purchase is a single decrement.
func (s *Session) commit(ctx context.Context, from, to statemachine.State, event statemachine.Event, data any) error {
	for _, r := range s.reservations {
		s.store.Commit(r.Product, r.Quantity)
		s.log.Debug("reservation committed",
			slog.Int("product_id", r.Product.ID),
			slog.Int("quantity", r.Quantity),
		)
	}
	return nil
}

func (s *Session) fire(ctx context.Context, event statemachine.Event) {
	from := s.sm.Current()
	if err := s.sm.Fire(ctx, event, nil); err != nil {
		s.log.Error("transition failed",
			slog.String("from", from.Name()),
			slog.String("event", event.Name()),
			logger.Error(err),
		)
		return
	}
	s.log.Debug("transition",
		slog.String("from", from.Name()),
		slog.String("event", event.Name()),
		slog.String("to", s.sm.Current().Name()),
	)
}
