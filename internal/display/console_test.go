package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/display"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("customer view hides out-of-stock rows", func(t *testing.T) {
		t.Parallel()
		store := catalog.MustNewStore([]catalog.Product{
			{ID: 0, Name: "Cola", Price: 250, Quantity: 3},
			{ID: 1, Name: "Chips", Price: 300, Quantity: 0},
		})

		var out strings.Builder
		display.New(&out).Catalog(store.Products(), false)

		assert.Contains(t, out.String(), "Available selections:")
		assert.Contains(t, out.String(), "[ID 0] Cola - $2.50 (3 item(s) in stock)")
		assert.NotContains(t, out.String(), "Chips")
	})

	t.Run("admin view includes everything", func(t *testing.T) {
		t.Parallel()
		store := catalog.MustNewStore([]catalog.Product{
			{ID: 0, Name: "Cola", Price: 250, Quantity: 0},
		})

		var out strings.Builder
		display.New(&out).Catalog(store.Products(), true)

		assert.Contains(t, out.String(), "Products:")
		assert.Contains(t, out.String(), "[ID 0] Cola - $2.50 (0 item(s) in stock)")
	})

	t.Run("fully empty machine", func(t *testing.T) {
		t.Parallel()
		store := catalog.MustNewStore([]catalog.Product{
			{ID: 0, Name: "Cola", Price: 250, Quantity: 0},
		})

		var out strings.Builder
		display.New(&out).Catalog(store.Products(), false)

		assert.Contains(t, out.String(), "(no items available)")
	})
}

func TestSelections(t *testing.T) {
	t.Parallel()

	store := catalog.MustNewStore([]catalog.Product{
		{ID: 4, Name: "Sour Worms", Price: 300, Quantity: 10},
	})
	p, err := store.Lookup("4")
	require.NoError(t, err)

	var out strings.Builder
	display.New(&out).Selections([]catalog.Reservation{{Product: p, Quantity: 2}})

	assert.Contains(t, out.String(), "You have selected:")
	assert.Contains(t, out.String(), "[ID 4] Sour Worms - quantity 2 @ $3.00 each = total $6.00")
}

func TestChangeAndRefundSkipZero(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	c := display.New(&out)

	c.Change(0)
	c.Refund(0)
	assert.Empty(t, out.String())

	c.Change(50)
	assert.Contains(t, out.String(), "change: $0.50")
}

func TestAcceptedDenominations(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	display.New(&out).AcceptedDenominations()

	assert.Contains(t, out.String(), "$0.10  $0.20  $0.50  $1.00  $2.00  $5.00  $10.00  $20.00")
}
