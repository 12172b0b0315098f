// Package display renders operator-facing text. It is a collaborator of
// the session state machines: no transition logic lives here, only the
// wording and layout of what the machine says.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vendkit/vendkit/internal/catalog"
	"github.com/vendkit/vendkit/internal/ledger"
)

// Console writes display strings to a single output sink.
type Console struct {
	w io.Writer
}

func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Writer exposes the underlying sink so the input gate can share it for
// prompt markers.
func (c *Console) Writer() io.Writer {
	return c.w
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.w, s)
}

func (c *Console) Welcome() {
	c.println("==================\n\nWelcome to the Vending Machine!")
}

// Catalog renders the product list. Customers see only in-stock rows;
// admins see everything.
func (c *Console) Catalog(products []*catalog.Product, includeEmpty bool) {
	var b strings.Builder
	if includeEmpty {
		b.WriteString("\nProducts:\n")
	} else {
		b.WriteString("\nAvailable selections:\n")
	}

	empty := true
	for _, p := range products {
		if p.Quantity > 0 {
			empty = false
		}
		if !includeEmpty && p.Quantity <= 0 {
			continue
		}
		fmt.Fprintf(&b, "[ID %d] %s - %s (%d item(s) in stock)\n",
			p.ID, p.Name, ledger.FormatCents(p.Price), p.Quantity)
	}
	if empty {
		b.WriteString("(no items available)\n")
	}
	c.println(b.String())
}

func (c *Console) Instructions() {
	c.println("Please select a product. Type 'END' to proceed to payment. Type 'CANCEL' to cancel transaction. Type 'HELP' for instructions.\n")
}

func (c *Console) Help() {
	c.println("\n[product id] - Select a product.")
	c.println("[product name] - Select a product.")
	c.println("HELP - Display this help dialog.")
}

func (c *Console) InvalidSyntax() {
	c.println("\nInvalid input. Type HELP for instructions.")
}

func (c *Console) InvalidSelection() {
	c.println("\nInvalid selection.")
}

func (c *Console) OutOfStock(name string) {
	c.printf("%s is out of stock.\n", name)
}

func (c *Console) NothingSelected() {
	c.println("\nNo items have been selected for purchase. Please try again.")
}

func (c *Console) QuantityPrompt(p *catalog.Product) {
	c.printf("\nYou have selected %s. There are %d item(s) in stock. How many would you like to purchase (Type a number)?\n\n", p.Name, p.Quantity)
}

func (c *Console) QuantityNotNumeric() {
	c.println("\nInvalid input. Please enter a numerical value.\n")
}

func (c *Console) QuantityNotPositive() {
	c.println("\nInvalid input. Please enter a positive, non-zero number.\n")
}

func (c *Console) NotEnoughStock() {
	c.println("\nNot enough stock. Please enter a smaller number.\n")
}

// Selections renders the merged per-product selection aggregate.
func (c *Console) Selections(reservations []catalog.Reservation) {
	c.println("\nYou have selected:")
	c.reservationLines(reservations)
}

func (c *Console) reservationLines(reservations []catalog.Reservation) {
	var b strings.Builder
	for _, r := range reservations {
		fmt.Fprintf(&b, "[ID %d] %s - quantity %d @ %s each = total %s\n",
			r.Product.ID, r.Product.Name, r.Quantity,
			ledger.FormatCents(r.Product.Price), ledger.FormatCents(r.Total()))
	}
	c.printf("%s", b.String())
}

func (c *Console) GrandTotal(cents int64) {
	c.printf("\nGrand total is %s - Please insert money:\n\n", ledger.FormatCents(cents))
}

func (c *Console) PaymentNotNumeric() {
	c.println("\nInvalid input. Please insert money:\n")
}

func (c *Console) AcceptedDenominations() {
	var b strings.Builder
	b.WriteString("\nInvalid input.\n\nThe Vending Machine accepts:\n")
	for i, d := range ledger.Denominations {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(ledger.FormatCents(d))
	}
	b.WriteString("\n")
	c.println(b.String())
}

func (c *Console) Shortfall(paid, owing int64) {
	c.printf("\nInsufficient funds. You have paid %s so far. Owing %s.\n",
		ledger.FormatCents(paid), ledger.FormatCents(owing))
	c.println("Please insert more money or type 'CANCEL' to cancel transaction:\n")
}

func (c *Console) PaymentSuccessful() {
	c.println("\nPayment successful.")
}

// Change prints the change line. Zero change prints nothing.
func (c *Console) Change(cents int64) {
	if cents == 0 {
		return
	}
	c.printf("Please don't forget to take your change: %s\n", ledger.FormatCents(cents))
}

// Refund prints the refund on cancellation. Zero refund prints nothing.
func (c *Console) Refund(cents int64) {
	if cents == 0 {
		return
	}
	c.printf("\nPlease don't forget to take your change: %s\n", ledger.FormatCents(cents))
}

func (c *Console) Purchased(reservations []catalog.Reservation) {
	c.println("\nYou have purchased:")
	c.reservationLines(reservations)
	c.println("Thank you for your purchase!\n")
}

func (c *Console) TimeoutBanner() {
	c.println("\n\n\n [!] Transaction cancelled due to user inactivity. [!]\n")
}

func (c *Console) CancelBanner() {
	c.println("\n\n [!] Transaction cancelled by user. [!]\n")
}

func (c *Console) Farewell() {
	c.println("\nExiting system. Have a nice day! :)")
}

func (c *Console) UnknownAdmin(id string) {
	c.printf("\nAdmin id %q does not exist in the system!\n", id)
}

func (c *Console) AdminWelcome(id string) {
	c.printf("\nWelcome Admin %q to the admin system!\n", id)
}

func (c *Console) RefillAuthenticated() {
	c.println("\nAdmin identity authenticated. Refilling...")
}

func (c *Console) AdminAdded(id string) {
	c.printf("\nAdmin id %q has been successfully added to the system!\n", id)
}

func (c *Console) AdminAlreadyExists(id string) {
	c.printf("\nAdmin id %q has been already stored in the system!\n", id)
}

func (c *Console) AdminRemoved(id string) {
	c.printf("\nAdmin id %q has been successfully removed from the system!\n", id)
}

func (c *Console) Restocked(token string, at time.Time) {
	c.printf("Product %s successfully restocked at %s\n\n", token, at.Format("2006/01/02 15:04:05"))
}

func (c *Console) RestockFailed(token string) {
	c.printf("%s is not a valid product or product ID. Restock failed.\n\n", token)
}

func (c *Console) AdminExit() {
	c.println("\n\nYou are exiting admin mode\n===========================\n")
}
