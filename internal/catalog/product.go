package catalog

// Category is a decorative grouping tag. No transition logic depends on it.
type Category string

const (
	CategoryChips     Category = "chips"
	CategoryLollies   Category = "lollies"
	CategoryDrink     Category = "drink"
	CategoryChocolate Category = "chocolate"
)

// Product is one catalog entry. The catalog is fixed for the process
// lifetime: products are never created or destroyed after seeding, and
// Quantity is mutated only through the store's Reserve/Release/Restock
// operations.
type Product struct {
	// ID is stable, assigned at catalog construction, never reused.
	ID int
	// Name is unique; lookups match it case-insensitively.
	Name string
	// Price is in cents.
	Price int64
	// Quantity is the true remaining stock. Reservations decrement it
	// eagerly, so it never shows an over-committed figure.
	Quantity int
	Category Category
}
