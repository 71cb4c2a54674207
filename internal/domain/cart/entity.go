package cart

import (
	"errors"
	"sort"
)

var (
	ErrEmptyProductID  = errors.New("product id is required")
	ErrEmptyName       = errors.New("product name is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrDuplicateLine   = errors.New("duplicate cart line")
)

// Line is one product's pre-checkout quantity intent.
type Line struct {
	productID string
	name      string
	unitPrice Money
	quantity  int
}

func NewLine(productID, name string, unitPrice Money, quantity int) (Line, error) {
	if productID == "" {
		return Line{}, ErrEmptyProductID
	}
	if name == "" {
		return Line{}, ErrEmptyName
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{productID: productID, name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (l Line) ProductID() string { return l.productID }
func (l Line) Name() string      { return l.name }
func (l Line) UnitPrice() Money  { return l.unitPrice }
func (l Line) Quantity() int     { return l.quantity }

func (l Line) Total() Money {
	return l.unitPrice.Mul(l.quantity)
}

// Cart holds at most one line per product id. It carries no network
// state; stock ceilings are supplied by the caller when clamping.
type Cart struct {
	lines map[string]Line
}

func NewCart() *Cart {
	return &Cart{lines: map[string]Line{}}
}

// ReconstructCart rebuilds a cart from persisted lines. Lines that
// repeat a product id are rejected rather than merged so a corrupted
// store surfaces instead of silently inflating quantities.
func ReconstructCart(lines []Line) (*Cart, error) {
	c := NewCart()
	for _, l := range lines {
		if l.productID == "" {
			return nil, ErrEmptyProductID
		}
		if l.quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if _, ok := c.lines[l.productID]; ok {
			return nil, ErrDuplicateLine
		}
		c.lines[l.productID] = l
	}
	return c, nil
}

// AddItem merges into an existing line for the same product,
// otherwise creates one. No upper bound here: the stock ceiling is
// authoritative on the backend and enforced at submission.
func (c *Cart) AddItem(productID, name string, unitPrice Money, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if existing, ok := c.lines[productID]; ok {
		existing.quantity += quantity
		c.lines[productID] = existing
		return nil
	}
	line, err := NewLine(productID, name, unitPrice, quantity)
	if err != nil {
		return err
	}
	c.lines[productID] = line
	return nil
}

// SetQuantity clamps to [1, maxStock] instead of failing: the renderer
// passes the stock ceiling it last displayed, which may already be
// stale. A maxStock below 1 clamps to 1 as well; the backend has the
// final say at submission.
func (c *Cart) SetQuantity(productID string, quantity, maxStock int) error {
	line, ok := c.lines[productID]
	if !ok {
		return ErrLineNotFound
	}
	if maxStock < 1 {
		maxStock = 1
	}
	if quantity < 1 {
		quantity = 1
	}
	if quantity > maxStock {
		quantity = maxStock
	}
	line.quantity = quantity
	c.lines[productID] = line
	return nil
}

func (c *Cart) Remove(productID string) error {
	if _, ok := c.lines[productID]; !ok {
		return ErrLineNotFound
	}
	delete(c.lines, productID)
	return nil
}

func (c *Cart) Clear() {
	c.lines = map[string]Line{}
}

// Lines returns a defensive copy ordered by product id so renders are
// stable across calls.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].productID < out[j].productID })
	return out
}

func (c *Cart) Line(productID string) (Line, bool) {
	l, ok := c.lines[productID]
	return l, ok
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() Money {
	total := NewMoney(0)
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}
