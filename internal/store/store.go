package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/adventureland-park/ticket-office/internal/domain"
)

// Store owns the five collections and their durable tables. Collections are
// ordered slices; each save overwrites the whole table and each load replays
// rows in insertion order. Lookups are linear scans — collections are
// park-scale and stay small.
type Store struct {
	db *gorm.DB

	Customers    []*domain.Customer
	Admins       []*domain.Admin
	Tickets      []*domain.Ticket
	Reservations []*domain.Reservation
	Payments     []*domain.Payment
}

const (
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "test1234"
)

type options struct {
	adminEmail    string
	adminPassword string
}

type Option func(*options)

// WithAdminSeed overrides the credentials of the admin record seeded on
// first load.
func WithAdminSeed(email, password string) Option {
	return func(o *options) {
		if email != "" {
			o.adminEmail = email
		}
		if password != "" {
			o.adminPassword = password
		}
	}
}

// Open migrates the tables, loads every collection and re-links the
// persisted id cross-references into pointers. An empty admin collection is
// seeded with a single default admin and persisted immediately. Tickets are
// not seeded here; that is the caller's job.
func Open(db *gorm.DB, opts ...Option) (*Store, error) {
	o := options{
		adminEmail:    defaultAdminEmail,
		adminPassword: defaultAdminPassword,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := db.AutoMigrate(&customerRow{}, &adminRow{}, &ticketRow{}, &reservationRow{}, &paymentRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db}
	if err := s.loadAll(); err != nil {
		return nil, err
	}

	if len(s.Admins) == 0 {
		s.Admins = append(s.Admins, &domain.Admin{
			User: domain.User{ID: 1, Name: "Admin", Email: o.adminEmail, Password: o.adminPassword},
			Role: "Admin",
		})
		if err := s.SaveAdmins(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) loadAll() error {
	customers, err := loadRows[customerRow](s.db)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}
	admins, err := loadRows[adminRow](s.db)
	if err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	tickets, err := loadRows[ticketRow](s.db)
	if err != nil {
		return fmt.Errorf("load tickets: %w", err)
	}
	reservations, err := loadRows[reservationRow](s.db)
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}
	payments, err := loadRows[paymentRow](s.db)
	if err != nil {
		return fmt.Errorf("load payments: %w", err)
	}

	for _, row := range customers {
		s.Customers = append(s.Customers, &domain.Customer{
			User:  domain.User{ID: row.ID, Name: row.Name, Email: row.Email, Password: row.Password},
			Phone: row.Phone,
		})
	}
	for _, row := range admins {
		s.Admins = append(s.Admins, &domain.Admin{
			User: domain.User{ID: row.ID, Name: row.Name, Email: row.Email, Password: row.Password},
			Role: row.Role,
		})
	}
	for _, row := range tickets {
		s.Tickets = append(s.Tickets, &domain.Ticket{
			ID:          row.ID,
			Type:        row.Type,
			Price:       row.Price,
			Validity:    row.Validity,
			Description: row.Description,
			Limitations: row.Limitations,
			Discount:    row.Discount,
		})
	}
	for _, row := range payments {
		s.Payments = append(s.Payments, &domain.Payment{
			ID:     row.ID,
			Amount: row.Amount,
			Method: row.Method,
			Date:   row.Date,
		})
	}

	// Reservations resolve their references last. A customer id that no
	// longer resolves loads as a nil customer (dangling reference left by a
	// customer deletion).
	for _, row := range reservations {
		r := &domain.Reservation{
			ID:       row.ID,
			Customer: s.CustomerByID(row.CustomerID),
			Ticket:   s.TicketByID(row.TicketID),
			Date:     row.Date,
		}
		if p := s.PaymentByID(row.PaymentID); p != nil {
			r.AttachPayment(p)
			p.AttachReservation(r)
		}
		s.Reservations = append(s.Reservations, r)
	}

	// Rebuild each customer's ordered reservation list from the persisted
	// id list.
	for i, row := range customers {
		for _, id := range row.ReservationIDs {
			if r := s.ReservationByID(id); r != nil {
				s.Customers[i].AddReservation(r)
			}
		}
	}

	return nil
}

// CustomerByID returns the first customer with the given id, or nil.
func (s *Store) CustomerByID(id int) *domain.Customer {
	for _, c := range s.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// TicketByID returns the first ticket with the given id, or nil.
func (s *Store) TicketByID(id int) *domain.Ticket {
	for _, t := range s.Tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ReservationByID returns the first reservation with the given id, or nil.
func (s *Store) ReservationByID(id int) *domain.Reservation {
	for _, r := range s.Reservations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// PaymentByID returns the first payment with the given id, or nil.
func (s *Store) PaymentByID(id int) *domain.Payment {
	for _, p := range s.Payments {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// SaveCustomers overwrites the customers table with the in-memory
// collection. The other Save methods do the same for their collection; each
// is an independent overwrite with no cross-table transaction.
func (s *Store) SaveCustomers() error {
	rows := make([]customerRow, 0, len(s.Customers))
	for _, c := range s.Customers {
		rows = append(rows, newCustomerRow(c))
	}
	if err := saveRows(s.db, rows); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	return nil
}

func (s *Store) SaveAdmins() error {
	rows := make([]adminRow, 0, len(s.Admins))
	for _, a := range s.Admins {
		rows = append(rows, newAdminRow(a))
	}
	if err := saveRows(s.db, rows); err != nil {
		return fmt.Errorf("save admins: %w", err)
	}
	return nil
}

func (s *Store) SaveTickets() error {
	rows := make([]ticketRow, 0, len(s.Tickets))
	for _, t := range s.Tickets {
		rows = append(rows, newTicketRow(t))
	}
	if err := saveRows(s.db, rows); err != nil {
		return fmt.Errorf("save tickets: %w", err)
	}
	return nil
}

func (s *Store) SaveReservations() error {
	rows := make([]reservationRow, 0, len(s.Reservations))
	for _, r := range s.Reservations {
		rows = append(rows, newReservationRow(r))
	}
	if err := saveRows(s.db, rows); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

func (s *Store) SavePayments() error {
	rows := make([]paymentRow, 0, len(s.Payments))
	for _, p := range s.Payments {
		rows = append(rows, newPaymentRow(p))
	}
	if err := saveRows(s.db, rows); err != nil {
		return fmt.Errorf("save payments: %w", err)
	}
	return nil
}

func loadRows[R any](db *gorm.DB) ([]R, error) {
	var rows []R
	if err := db.Order("key").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func saveRows[R any](db *gorm.DB, rows []R) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var model R
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
