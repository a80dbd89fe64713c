package domain

import "github.com/shopspring/decimal"

// StatusProcessed is broadcast once an order has been processed
const StatusProcessed = "Processed"

// StatusListener is invoked synchronously with the new status of an order.
// A non-nil error stops the broadcast.
type StatusListener func(status string) error

// Order aggregates products and broadcasts status changes.
// It is not safe for concurrent mutation.
type Order struct {
	number    int
	products  []Product
	listeners []StatusListener
}

// NewOrder creates an empty order
func NewOrder(number int) *Order {
	return &Order{number: number}
}

func (o *Order) Number() int { return o.number }

// AddProduct appends p. Nil products are ignored.
func (o *Order) AddProduct(p Product) {
	if p == nil {
		return
	}
	o.products = append(o.products, p)
}

// Products returns a copy of the products in insertion order
func (o *Order) Products() []Product {
	out := make([]Product, len(o.products))
	copy(out, o.products)
	return out
}

// TotalCost sums CalculateCost over the current products
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.products {
		total = total.Add(p.CalculateCost())
	}
	return total
}

// RegisterStatusListener appends l to the broadcast list. Nil listeners are ignored.
func (o *Order) RegisterStatusListener(l StatusListener) {
	if l == nil {
		return
	}
	o.listeners = append(o.listeners, l)
}

// ChangeOrderStatus calls every listener in registration order and returns
// the first failure as a *ListenerError; later listeners are skipped.
func (o *Order) ChangeOrderStatus(status string) error {
	for i, l := range o.listeners {
		if err := l(status); err != nil {
			return &ListenerError{Status: status, Index: i, Err: err}
		}
	}
	return nil
}
