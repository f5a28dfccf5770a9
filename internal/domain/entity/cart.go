package entity

// CartLine is a menu item snapshot plus a quantity. Quantity is always >= 1;
// a line that would reach 0 is removed instead of stored.
type CartLine struct {
	MenuItem
	Qty int `json:"qty"`
}

// LineTotal returns price * qty for the line.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Qty)
}

// Cart is the ephemeral set of lines being assembled before becoming an
// order. It is owned by exactly one editing session: either a new order or
// an existing Open order loaded for editing.
type Cart struct {
	Lines          []CartLine `json:"lines"`
	Note           string     `json:"note"`
	DiscountName   string     `json:"discountName"`
	DiscountAmount int64      `json:"discountAmount"`
}

// Add appends a new line with qty 1, or increments the existing line for the
// same item id. Lines are keyed by id, so adding twice never duplicates.
func (c *Cart) Add(item MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].ID == item.ID {
			c.Lines[i].Qty++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{MenuItem: item, Qty: 1})
}

// Increment raises a line's quantity by one. Unknown ids are ignored.
func (c *Cart) Increment(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Qty++
			return
		}
	}
}

// Decrement lowers a line's quantity by one, removing the line at zero.
func (c *Cart) Decrement(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Qty--
			if c.Lines[i].Qty <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			}
			return
		}
	}
}

// Remove drops a line unconditionally.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Subtotal is recomputed from the lines on every read so it can never drift.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.LineTotal()
	}
	return sum
}

// Total clamps the discounted subtotal at zero. The discount amount itself is
// not clamped when set; the clamp happens here, at read time.
func (c *Cart) Total() int64 {
	t := c.Subtotal() - c.DiscountAmount
	if t < 0 {
		return 0
	}
	return t
}

// IsEmpty reports whether the cart holds no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot copies the lines so a committed order never aliases the live cart.
func (c *Cart) Snapshot() []CartLine {
	items := make([]CartLine, len(c.Lines))
	copy(items, c.Lines)
	return items
}

// Clear resets lines, note and discount in one step.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Note = ""
	c.DiscountName = ""
	c.DiscountAmount = 0
}
