package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendkit/vendkit/internal/catalog"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	store := catalog.Default()

	t.Run("case-insensitive name and id resolve identically", func(t *testing.T) {
		t.Parallel()
		byID, err := store.Lookup("0")
		require.NoError(t, err)

		for _, token := range []string{"Original", "ORIGINAL", "original"} {
			p, err := store.Lookup(token)
			require.NoError(t, err)
			assert.Same(t, byID, p, "token %q", token)
		}
	})

	t.Run("multi-word name", func(t *testing.T) {
		t.Parallel()
		p, err := store.Lookup("sour worms")
		require.NoError(t, err)
		assert.Equal(t, 4, p.ID)
	})

	t.Run("integer tokens never fall back to name", func(t *testing.T) {
		t.Parallel()
		_, err := store.Lookup("99")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("unknown name", func(t *testing.T) {
		t.Parallel()
		_, err := store.Lookup("haggis")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestReserveReleaseCommit(t *testing.T) {
	t.Parallel()

	t.Run("reserve decrements immediately", func(t *testing.T) {
		t.Parallel()
		store := catalog.Default()
		p, err := store.Lookup("0")
		require.NoError(t, err)
		require.Equal(t, 2, p.Quantity)

		require.NoError(t, store.Reserve(p, 1))
		assert.Equal(t, 1, p.Quantity)
	})

	t.Run("reserve beyond stock fails without mutation", func(t *testing.T) {
		t.Parallel()
		store := catalog.Default()
		p, err := store.Lookup("0")
		require.NoError(t, err)

		assert.ErrorIs(t, store.Reserve(p, 3), catalog.ErrInsufficientStock)
		assert.Equal(t, 2, p.Quantity)
		assert.Error(t, store.Reserve(p, 0))
		assert.Equal(t, 2, p.Quantity)
	})

	t.Run("release restores the pre-reservation quantity", func(t *testing.T) {
		t.Parallel()
		store := catalog.Default()
		p, err := store.Lookup("Water")
		require.NoError(t, err)
		before := p.Quantity

		require.NoError(t, store.Reserve(p, 4))
		store.Release(p, 4)
		assert.Equal(t, before, p.Quantity)
	})

	t.Run("commit leaves the reservation decrement as the net effect", func(t *testing.T) {
		t.Parallel()
		store := catalog.Default()
		p, err := store.Lookup("Juice")
		require.NoError(t, err)
		before := p.Quantity

		require.NoError(t, store.Reserve(p, 2))
		store.Commit(p, 2)
		assert.Equal(t, before-2, p.Quantity, "exactly one decrement across reserve+commit")
	})
}

func TestRestock(t *testing.T) {
	t.Parallel()

	store := catalog.Default()

	p, err := store.Restock("0")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)

	_, err = store.Restock("nothing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProductsOrdering(t *testing.T) {
	t.Parallel()

	products := catalog.Default().Products()
	require.Len(t, products, 15)
	for i, p := range products {
		assert.Equal(t, i, p.ID)
	}
}

func TestNewStoreValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seed []catalog.Product
	}{
		{"duplicate id", []catalog.Product{
			{ID: 1, Name: "A", Price: 100, Quantity: 1},
			{ID: 1, Name: "B", Price: 100, Quantity: 1},
		}},
		{"duplicate name ignoring case", []catalog.Product{
			{ID: 1, Name: "Cola", Price: 100, Quantity: 1},
			{ID: 2, Name: "COLA", Price: 100, Quantity: 1},
		}},
		{"empty name", []catalog.Product{{ID: 1, Price: 100, Quantity: 1}}},
		{"negative price", []catalog.Product{{ID: 1, Name: "A", Price: -1, Quantity: 1}}},
		{"negative quantity", []catalog.Product{{ID: 1, Name: "A", Price: 1, Quantity: -1}}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.NewStore(tc.seed)
			assert.ErrorIs(t, err, catalog.ErrInvalidSeed)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("valid seed", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		seed := `
- id: 0
  name: Cola
  price: 2.50
  quantity: 5
  category: drink
- id: 1
  name: Chips
  price: 3.00
  quantity: 7
  category: chips
`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

		store, err := catalog.LoadFile(path)
		require.NoError(t, err)

		p, err := store.Lookup("cola")
		require.NoError(t, err)
		assert.Equal(t, int64(250), p.Price)
		assert.Equal(t, 5, p.Quantity)
		assert.Equal(t, catalog.Category("drink"), p.Category)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("empty seed", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o600))

		_, err := catalog.LoadFile(path)
		assert.ErrorIs(t, err, catalog.ErrInvalidSeed)
	})
}
