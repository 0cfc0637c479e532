// Package cart holds the buyer-side shopping cart: an ordered collection of
// product lines driven by discrete actions and written through to local
// storage after every transition. It never talks to the server.
package cart

import "encoding/json"

type Item struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type State struct {
	Items []Item `json:"items"`
}

func (s State) clone() State {
	out := State{Items: make([]Item, len(s.Items))}
	copy(out.Items, s.Items)
	return out
}

// Total sums price × quantity over all lines.
func (s State) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

type Action interface {
	apply(State) State
}

// Add appends a line, or bumps the quantity when the product is already in
// the cart.
type Add struct {
	Item Item
}

func (a Add) apply(s State) State {
	next := s.clone()
	for i, item := range next.Items {
		if item.ProductID == a.Item.ProductID {
			next.Items[i].Quantity += a.Item.Quantity
			return next
		}
	}
	next.Items = append(next.Items, a.Item)
	return next
}

type Remove struct {
	ProductID int64
}

func (a Remove) apply(s State) State {
	next := State{Items: make([]Item, 0, len(s.Items))}
	for _, item := range s.Items {
		if item.ProductID != a.ProductID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

type Clear struct{}

func (a Clear) apply(State) State {
	return State{Items: []Item{}}
}

// Replace swaps the whole cart, used when rehydrating persisted state.
type Replace struct {
	Items []Item
}

func (a Replace) apply(State) State {
	next := State{Items: make([]Item, len(a.Items))}
	copy(next.Items, a.Items)
	return next
}

// UpdateQuantity sets a line's quantity outright; unknown products are
// ignored.
type UpdateQuantity struct {
	ProductID int64
	Quantity  int64
}

func (a UpdateQuantity) apply(s State) State {
	next := s.clone()
	for i, item := range next.Items {
		if item.ProductID == a.ProductID {
			next.Items[i].Quantity = a.Quantity
		}
	}
	return next
}

func Reduce(s State, a Action) State {
	return a.apply(s)
}

// Cart is single-writer: the local UI drives it and every transition is
// persisted synchronously before Dispatch returns.
type Cart struct {
	state   State
	storage Storage
}

// Open rehydrates the cart from storage, starting empty when nothing was
// persisted.
func Open(storage Storage) (*Cart, error) {
	c := &Cart{storage: storage}

	state, found, err := storage.LoadCart()
	if err != nil {
		return nil, err
	}
	if found {
		c.state = Reduce(c.state, Replace{Items: state.Items})
	}

	return c, nil
}

func (c *Cart) Dispatch(a Action) error {
	next := Reduce(c.state, a)
	if err := c.storage.SaveCart(next); err != nil {
		return err
	}
	c.state = next
	return nil
}

func (c *Cart) Items() []Item {
	return c.state.clone().Items
}

func (c *Cart) Total() float64 {
	return c.state.Total()
}

// CompleteCheckout stores the server's order response as the last completed
// receipt and clears the cart. On a failed checkout the caller simply does
// not call this, leaving the cart untouched.
func (c *Cart) CompleteCheckout(receipt json.RawMessage) error {
	if err := c.storage.SaveReceipt(receipt); err != nil {
		return err
	}
	return c.Dispatch(Clear{})
}

// Receipt returns the last completed order, if any.
func (c *Cart) Receipt() (json.RawMessage, bool, error) {
	return c.storage.LoadReceipt()
}
