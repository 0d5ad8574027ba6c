package domain

// Payment freezes the ticket price at purchase time; later price changes do
// not touch the recorded amount. Payments are never deleted, even when the
// reservation they back is cancelled.
type Payment struct {
	ID          int
	Amount      float64
	Method      string
	Date        string // creation date, YYYY-MM-DD
	Reservation *Reservation
}

// AttachReservation links back to the reservation this payment was created
// for, mirroring Reservation.Payment.
func (p *Payment) AttachReservation(r *Reservation) {
	p.Reservation = r
}
