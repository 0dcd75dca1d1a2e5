// internal/domain/cart/ledger.go
package cart

import (
	"slices"
	"time"

	"github.com/saraswati-store/storefront/internal/domain/product"
)

// MaxLineQuantity caps the units held on a single cart line
const MaxLineQuantity = 999

// Ledger is one shopper's cart: an ordered list of lines with at most one
// line per product
type Ledger struct {
	Key       string     `json:"key"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewLedger returns an empty ledger for key
func NewLedger(key string) *Ledger {
	return &Ledger{
		Key:   key,
		Lines: []CartLine{},
	}
}

// Add puts quantity units of p into the ledger. An existing line grows by
// quantity; otherwise a new line snapshots the product's display fields.
// A line never holds more than MaxLineQuantity units. Quantities are not
// checked against stock.
func (l *Ledger) Add(p product.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	if i := l.indexOf(p.ID); i >= 0 {
		line := &l.Lines[i]
		if quantity > MaxLineQuantity-line.Quantity {
			line.Quantity = MaxLineQuantity
		} else {
			line.Quantity += quantity
		}
		return
	}

	l.Lines = append(l.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  min(quantity, MaxLineQuantity),
	})
}

// UpdateQuantity sets a line's quantity, capped at MaxLineQuantity. A
// quantity of zero or below removes the line.
func (l *Ledger) UpdateQuantity(productID uint, quantity int) error {
	i := l.indexOf(productID)
	if i < 0 {
		return &NotFoundError{Resource: ResourceCartLine, ProductID: productID}
	}

	if quantity <= 0 {
		l.Lines = slices.Delete(l.Lines, i, i+1)
		return nil
	}

	l.Lines[i].Quantity = min(quantity, MaxLineQuantity)
	return nil
}

// Remove drops the line for productID if there is one
func (l *Ledger) Remove(productID uint) {
	if i := l.indexOf(productID); i >= 0 {
		l.Lines = slices.Delete(l.Lines, i, i+1)
	}
}

// Clear empties the ledger
func (l *Ledger) Clear() {
	l.Lines = []CartLine{}
}

// Totals computes the pricing breakdown for the current lines
func (l *Ledger) Totals() CartTotals {
	return CalculateTotals(l.Lines)
}

// Response snapshots the ledger for a client
func (l *Ledger) Response() *CartResponse {
	items := make([]CartLine, len(l.Lines))
	copy(items, l.Lines)

	return &CartResponse{
		Items:  items,
		Totals: l.Totals(),
	}
}

func (l *Ledger) indexOf(productID uint) int {
	return slices.IndexFunc(l.Lines, func(line CartLine) bool {
		return line.ProductID == productID
	})
}
