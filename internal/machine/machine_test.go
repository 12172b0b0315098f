package machine_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendkit/vendkit/internal/admin"
	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/display"
	"github.com/vendkit/vendkit/internal/machine"
	"github.com/vendkit/vendkit/internal/session"
	"github.com/vendkit/vendkit/pkg/prompt"
)

type scriptGate struct {
	lines []string
}

func (g *scriptGate) AwaitLine(ctx context.Context, timeout time.Duration) (string, error) {
	if len(g.lines) == 0 {
		// Exhausted script: block like an idle operator would.
		select {
		case <-ctx.Done():
		case <-time.After(timeout):
		}
		return "", prompt.ErrTimeout
	}
	line := g.lines[0]
	g.lines = g.lines[1:]
	return line, nil
}

func newMachine(store *catalog.Store, out *strings.Builder, lines ...string) *machine.Machine {
	return machine.New(
		store,
		admin.NewRegistry("admin"),
		&scriptGate{lines: lines},
		display.New(out),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		session.Config{InputTimeout: time.Second, AdminInputTimeout: time.Second},
	)
}

func TestRunConsecutiveSessions(t *testing.T) {
	t.Parallel()

	store := catalog.Default()
	var out strings.Builder
	m := newMachine(store, &out,
		// First customer buys one Original and leaves no change.
		"0", "1", "END", "5.0",
		// Second customer cancels.
		"CANCEL",
		// Third operator quits the machine.
		"QUIT",
	)

	require.NoError(t, m.Run(context.Background()))

	p, err := store.Lookup("0")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Quantity)

	assert.Equal(t, 3, strings.Count(out.String(), "Welcome to the Vending Machine!"),
		"a fresh session greets each customer")
	assert.Contains(t, out.String(), "[!] Transaction cancelled by user. [!]")
	assert.Contains(t, out.String(), "Have a nice day!")
}

func TestRunTimeoutStartsFreshSession(t *testing.T) {
	t.Parallel()

	store := catalog.Default()
	var out strings.Builder
	m := newMachine(store, &out,
		// Customer reserves then walks away at payment.
		"0", "2", "END",
		// The script is exhausted mid-payment: inactivity. The next
		// session immediately times out too, and so on, until the
		// context stops the loop.
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := m.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	p, err2 := store.Lookup("0")
	require.NoError(t, err2)
	assert.Equal(t, 2, p.Quantity, "reservation rolled back on inactivity")
	assert.Contains(t, out.String(), "[!] Transaction cancelled due to user inactivity. [!]")
}

func TestRunAdminScenario(t *testing.T) {
	t.Parallel()

	store := catalog.Default()
	var out strings.Builder
	m := newMachine(store, &out,
		"ADMIN admin",
		"FILL 0",
		"END",
		"QUIT",
	)

	require.NoError(t, m.Run(context.Background()))

	p, err := store.Lookup("0")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)
	assert.Contains(t, out.String(), "successfully restocked")
}
