package domain

// Reservation ties a customer to a ticket for a visit date. Customer, Ticket
// and Payment are shared references whose lifetimes belong to the store;
// neither side of the reservation/payment link owns the other.
type Reservation struct {
	ID       int
	Customer *Customer
	Ticket   *Ticket
	Date     string // visit date, YYYY-MM-DD
	Payment  *Payment
}

// AttachPayment links the payment created alongside this reservation. Set
// exactly once during purchase and never cleared.
func (r *Reservation) AttachPayment(p *Payment) {
	r.Payment = p
}
