package store

import (
	"gorm.io/datatypes"

	"github.com/adventureland-park/ticket-office/internal/domain"
)

// Row types are the durable shape of each collection. Entity ids are issued
// as size+1 and can repeat after deletions, so every row carries a surrogate
// key and collections are replayed in insertion order. Cross-references are
// stored as entity ids and re-linked into pointers on load.

type customerRow struct {
	Key            uint `gorm:"primaryKey;autoIncrement"`
	ID             int
	Name           string
	Email          string
	Password       string
	Phone          string
	ReservationIDs datatypes.JSONSlice[int]
}

func (customerRow) TableName() string { return "customers" }

type adminRow struct {
	Key      uint `gorm:"primaryKey;autoIncrement"`
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

func (adminRow) TableName() string { return "admins" }

type ticketRow struct {
	Key         uint `gorm:"primaryKey;autoIncrement"`
	ID          int
	Type        string
	Price       float64
	Validity    string
	Description string
	Limitations string
	Discount    string
}

func (ticketRow) TableName() string { return "tickets" }

type reservationRow struct {
	Key        uint `gorm:"primaryKey;autoIncrement"`
	ID         int
	CustomerID int
	TicketID   int
	Date       string
	PaymentID  int
}

func (reservationRow) TableName() string { return "reservations" }

type paymentRow struct {
	Key           uint `gorm:"primaryKey;autoIncrement"`
	ID            int
	Amount        float64
	Method        string
	Date          string
	ReservationID int
}

func (paymentRow) TableName() string { return "payments" }

func newCustomerRow(c *domain.Customer) customerRow {
	ids := make([]int, 0, len(c.Reservations))
	for _, r := range c.Reservations {
		ids = append(ids, r.ID)
	}
	return customerRow{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Password:       c.Password,
		Phone:          c.Phone,
		ReservationIDs: datatypes.NewJSONSlice(ids),
	}
}

func newAdminRow(a *domain.Admin) adminRow {
	return adminRow{
		ID:       a.ID,
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}

func newTicketRow(t *domain.Ticket) ticketRow {
	return ticketRow{
		ID:          t.ID,
		Type:        t.Type,
		Price:       t.Price,
		Validity:    t.Validity,
		Description: t.Description,
		Limitations: t.Limitations,
		Discount:    t.Discount,
	}
}

func newReservationRow(r *domain.Reservation) reservationRow {
	row := reservationRow{
		ID:   r.ID,
		Date: r.Date,
	}
	// A nil customer is a dangling reference left behind by a customer
	// deletion; its id is written as zero.
	if r.Customer != nil {
		row.CustomerID = r.Customer.ID
	}
	if r.Ticket != nil {
		row.TicketID = r.Ticket.ID
	}
	if r.Payment != nil {
		row.PaymentID = r.Payment.ID
	}
	return row
}

func newPaymentRow(p *domain.Payment) paymentRow {
	row := paymentRow{
		ID:     p.ID,
		Amount: p.Amount,
		Method: p.Method,
		Date:   p.Date,
	}
	if p.Reservation != nil {
		row.ReservationID = p.Reservation.ID
	}
	return row
}
