package domain

// User holds the identity fields shared by customers and admins. Identity is
// by ID; emails are used for lookup but are not required to be unique.
type User struct {
	ID       int
	Name     string
	Email    string
	Password string
}

// CheckPassword reports whether pw matches the stored password. Passwords
// are opaque comparison values, not hashes.
func (u *User) CheckPassword(pw string) bool {
	return u.Password == pw
}

func (u *User) Rename(name string) {
	u.Name = name
}

func (u *User) SetEmail(email string) {
	u.Email = email
}

// Customer owns an ordered list of reservations, kept in purchase order and
// mirroring the global reservation collection entries that reference it.
// Each mutating operation updates both views together.
type Customer struct {
	User
	Phone        string
	Reservations []*Reservation
}

func (c *Customer) SetPhone(phone string) {
	c.Phone = phone
}

func (c *Customer) AddReservation(r *Reservation) {
	c.Reservations = append(c.Reservations, r)
}

// RemoveReservation drops the first entry that is r, preserving the order of
// the rest. Unknown reservations are ignored.
func (c *Customer) RemoveReservation(r *Reservation) {
	for i, got := range c.Reservations {
		if got == r {
			c.Reservations = append(c.Reservations[:i], c.Reservations[i+1:]...)
			return
		}
	}
}

// Admin carries a descriptive role label; no permissions derive from it.
type Admin struct {
	User
	Role string
}
