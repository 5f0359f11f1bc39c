package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CartOwner keys a cart. A signed-in user's cart and the anonymous device cart share one store.
type CartOwner string

const (
	userOwnerPrefix = "user:"

	// LocalCartOwner is the single anonymous cart kept on the device before anyone signs in.
	LocalCartOwner CartOwner = "local"
)

// UserCartOwner returns the cart key of a registered user.
func UserCartOwner(userID int64) CartOwner {
	return CartOwner(userOwnerPrefix + strconv.FormatInt(userID, 10))
}

// UserID extracts the user id from a user cart key.
func (o CartOwner) UserID() (int64, bool) {
	raw, ok := strings.CutPrefix(string(o), userOwnerPrefix)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// IsLocal reports whether this is the anonymous device cart.
func (o CartOwner) IsLocal() bool {
	return o == LocalCartOwner
}

func (o CartOwner) String() string {
	return string(o)
}

// CartLine is one product in a cart, resolved against the catalog.
type CartLine struct {
	Owner    CartOwner
	Product  Product
	Quantity int
}

// LineTotal is the unit price times quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineItem freezes the line as it will be stored on an order.
func (l *CartLine) LineItem() LineItem {
	return LineItem{
		Name:      l.Product.Name,
		Quantity:  l.Quantity,
		UnitPrice: l.Product.Price,
		LineTotal: l.LineTotal(),
	}
}

// CartTotal sums the line totals of a cart.
func CartTotal(lines []*CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}

	return total
}
