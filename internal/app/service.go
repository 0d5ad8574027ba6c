package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adventureland-park/ticket-office/internal/clock"
	"github.com/adventureland-park/ticket-office/internal/domain"
	"github.com/adventureland-park/ticket-office/internal/store"
)

const dateLayout = "2006-01-02"

// Service runs the ticket office's transactions over the collection store.
// Every operation mutates in memory first and then persists each touched
// collection as an independent overwrite; validation failures never mutate
// state. The service is single-threaded: callers that share one across
// goroutines must add their own mutual exclusion.
type Service struct {
	store   *store.Store
	clock   clock.Clock
	session Session
}

// NewService wires a service over an opened store. An empty ticket
// collection is seeded with the default catalog and persisted.
func NewService(st *store.Store, clk clock.Clock) (*Service, error) {
	s := &Service{store: st, clock: clk}
	if len(st.Tickets) == 0 {
		st.Tickets = append(st.Tickets, defaultCatalog()...)
		if err := st.SaveTickets(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Session exposes the current authentication state to the caller.
func (s *Service) Session() *Session {
	return &s.session
}

func (s *Service) Customers() []*domain.Customer {
	return s.store.Customers
}

func (s *Service) Admins() []*domain.Admin {
	return s.store.Admins
}

func (s *Service) Tickets() []*domain.Ticket {
	return s.store.Tickets
}

func (s *Service) Reservations() []*domain.Reservation {
	return s.store.Reservations
}

func (s *Service) Payments() []*domain.Payment {
	return s.store.Payments
}

// AuthenticateCustomer signs in the first customer whose email and password
// both match exactly (case-sensitive, first match wins under duplicate
// emails). The session is untouched on failure.
func (s *Service) AuthenticateCustomer(email, password string) (*domain.Customer, error) {
	for _, c := range s.store.Customers {
		if c.Email == email && c.CheckPassword(password) {
			s.session.setCustomer(c)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid email or password", domain.ErrAuthentication)
}

// AuthenticateAdmin is the admin counterpart of AuthenticateCustomer.
func (s *Service) AuthenticateAdmin(email, password string) (*domain.Admin, error) {
	for _, a := range s.store.Admins {
		if a.Email == email && a.CheckPassword(password) {
			s.session.setAdmin(a)
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid admin credentials", domain.ErrAuthentication)
}

// Register creates a new customer account and returns its id. It does not
// sign the customer in.
func (s *Service) Register(name, email, password, phone string) (int, error) {
	if name == "" || email == "" || password == "" || phone == "" {
		return 0, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if !validEmail(email) {
		return 0, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if !validPhone(phone) {
		return 0, fmt.Errorf("%w: invalid phone number format", domain.ErrValidation)
	}

	customer := &domain.Customer{
		User: domain.User{
			ID:       len(s.store.Customers) + 1,
			Name:     name,
			Email:    email,
			Password: password,
		},
		Phone: phone,
	}
	s.store.Customers = append(s.store.Customers, customer)
	if err := s.store.SaveCustomers(); err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// Purchase books a ticket for the signed-in customer and records its
// payment. Reservation and payment are linked both ways and the payment
// amount freezes the ticket price at this instant. The reservation is
// appended to both the global collection and the customer's own list, and
// the reservations, payments and customers collections are each persisted.
func (s *Service) Purchase(ticketID int, date, method string) (*domain.Reservation, error) {
	customer := s.session.Customer()
	if customer == nil {
		return nil, fmt.Errorf("%w: no customer is signed in", domain.ErrAuthentication)
	}
	if ticketID == 0 || date == "" || method == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date format", domain.ErrValidation)
	}
	ticket := s.store.TicketByID(ticketID)
	if ticket == nil {
		return nil, fmt.Errorf("%w: ticket %d", domain.ErrNotFound, ticketID)
	}

	reservation := &domain.Reservation{
		ID:       len(s.store.Reservations) + 1,
		Customer: customer,
		Ticket:   ticket,
		Date:     date,
	}
	payment := &domain.Payment{
		ID:     len(s.store.Payments) + 1,
		Amount: ticket.Price,
		Method: method,
		Date:   s.clock.Now().Format(dateLayout),
	}
	reservation.AttachPayment(payment)
	payment.AttachReservation(reservation)

	s.store.Reservations = append(s.store.Reservations, reservation)
	s.store.Payments = append(s.store.Payments, payment)
	customer.AddReservation(reservation)

	if err := s.store.SaveReservations(); err != nil {
		return nil, err
	}
	if err := s.store.SavePayments(); err != nil {
		return nil, err
	}
	if err := s.store.SaveCustomers(); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Cancel removes the reservation from the global collection and from its
// customer's list. The linked payment stays on record as the audit trail.
func (s *Service) Cancel(reservation *domain.Reservation) error {
	idx := -1
	for i, r := range s.store.Reservations {
		if r == reservation {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, reservation.ID)
	}

	s.store.Reservations = append(s.store.Reservations[:idx], s.store.Reservations[idx+1:]...)
	if reservation.Customer != nil {
		reservation.Customer.RemoveReservation(reservation)
	}

	if err := s.store.SaveReservations(); err != nil {
		return err
	}
	return s.store.SaveCustomers()
}

// UpdateTicketPrice parses the admin-entered price text and applies it to
// the ticket in place.
func (s *Service) UpdateTicketPrice(ticket *domain.Ticket, priceText string) error {
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price <= 0 {
		return fmt.Errorf("%w: invalid price value", domain.ErrValidation)
	}
	ticket.SetPrice(price)
	return s.store.SaveTickets()
}

// DeleteCustomer removes the customer record only. Their reservations and
// payments stay in the global collections, referencing the removed customer.
func (s *Service) DeleteCustomer(customer *domain.Customer) error {
	idx := -1
	for i, c := range s.store.Customers {
		if c == customer {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: customer %d", domain.ErrNotFound, customer.ID)
	}

	s.store.Customers = append(s.store.Customers[:idx], s.store.Customers[idx+1:]...)
	return s.store.SaveCustomers()
}

// EditProfile updates the signed-in customer's name, email and phone number
// in place. Email and phone carry the same format rules as registration.
func (s *Service) EditProfile(name, email, phone string) error {
	customer := s.session.Customer()
	if customer == nil {
		return fmt.Errorf("%w: no customer is signed in", domain.ErrAuthentication)
	}
	if !validEmail(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if !validPhone(phone) {
		return fmt.Errorf("%w: invalid phone number format", domain.ErrValidation)
	}

	customer.Rename(name)
	customer.SetEmail(email)
	customer.SetPhone(phone)
	return s.store.SaveCustomers()
}

// Report summarizes ticket sales across all recorded payments.
type Report struct {
	TicketsSoldToday int
	TotalRevenue     float64
}

// SalesReport counts payments stamped with today's date and sums revenue
// over every payment on record. Pure read, no persistence.
func (s *Service) SalesReport() Report {
	today := s.clock.Now().Format(dateLayout)
	var report Report
	for _, p := range s.store.Payments {
		if p.Date == today {
			report.TicketsSoldToday++
		}
		report.TotalRevenue += p.Amount
	}
	return report
}

// Logout clears the session.
func (s *Service) Logout() {
	s.session.clear()
}

func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
