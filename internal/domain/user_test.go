package domain

import "testing"

func TestRemoveReservationKeepsOrder(t *testing.T) {
	c := &Customer{}
	first := &Reservation{ID: 1}
	second := &Reservation{ID: 2}
	third := &Reservation{ID: 3}
	c.AddReservation(first)
	c.AddReservation(second)
	c.AddReservation(third)

	c.RemoveReservation(second)

	if len(c.Reservations) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(c.Reservations))
	}
	if c.Reservations[0] != first || c.Reservations[1] != third {
		t.Error("remaining reservations out of order")
	}

	// Removing an unknown reservation is a no-op.
	c.RemoveReservation(&Reservation{ID: 9})
	if len(c.Reservations) != 2 {
		t.Errorf("unexpected removal, got %d reservations", len(c.Reservations))
	}
}

func TestCheckPasswordIsExact(t *testing.T) {
	u := &User{Password: "Test1234"}
	if !u.CheckPassword("Test1234") {
		t.Error("expected matching password to pass")
	}
	if u.CheckPassword("test1234") {
		t.Error("password comparison must be case-sensitive")
	}
}
