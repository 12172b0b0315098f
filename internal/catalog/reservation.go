package catalog

// Reservation binds a product to a quantity provisionally withdrawn from
// availability for one session. It is reversible via Store.Release until
// committed.
type Reservation struct {
	Product  *Product
	Quantity int
}

// Total is the reservation's price in cents.
func (r Reservation) Total() int64 {
	return r.Product.Price * int64(r.Quantity)
}

// GrandTotal sums the price of all reservations, in cents.
func GrandTotal(reservations []Reservation) int64 {
	var total int64
	for _, r := range reservations {
		total += r.Total()
	}
	return total
}
