package domain

// Ticket is one catalog entry. Discount is descriptive text with no numeric
// effect on the price; it may be empty.
type Ticket struct {
	ID          int
	Type        string
	Price       float64
	Validity    string
	Description string
	Limitations string
	Discount    string
}

// SetPrice replaces the price. Callers validate that the new price is
// positive before calling.
func (t *Ticket) SetPrice(price float64) {
	t.Price = price
}
