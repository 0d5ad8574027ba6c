package app

import "github.com/adventureland-park/ticket-office/internal/domain"

// Session tracks the single authenticated identity for the lifetime of the
// process: nobody, one customer, or one admin. It is never persisted.
type Session struct {
	customer *domain.Customer
	admin    *domain.Admin
}

// Customer returns the signed-in customer, or nil.
func (s *Session) Customer() *domain.Customer {
	return s.customer
}

// Admin returns the signed-in admin, or nil.
func (s *Session) Admin() *domain.Admin {
	return s.admin
}

func (s *Session) setCustomer(c *domain.Customer) {
	s.customer, s.admin = c, nil
}

func (s *Session) setAdmin(a *domain.Admin) {
	s.customer, s.admin = nil, a
}

func (s *Session) clear() {
	s.customer, s.admin = nil, nil
}
