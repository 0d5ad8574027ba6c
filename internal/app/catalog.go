package app

import "github.com/adventureland-park/ticket-office/internal/domain"

// defaultCatalog is the six-ticket catalog seeded when the park opens with
// an empty ticket collection.
func defaultCatalog() []*domain.Ticket {
	return []*domain.Ticket{
		{
			ID:          1,
			Type:        "Single-Day Pass",
			Price:       275,
			Validity:    "1 Day",
			Description: "Access to the park for one day",
			Limitations: "Valid only on selected date",
		},
		{
			ID:          2,
			Type:        "Two-Day Pass",
			Price:       480,
			Validity:    "2 Days",
			Description: "Access to the park for two consecutive days",
			Limitations: "Cannot be split over multiple trips",
			Discount:    "10% discount for online purchase",
		},
		{
			ID:          3,
			Type:        "Annual Membership",
			Price:       1840,
			Validity:    "1 Year",
			Description: "Unlimited access for one year",
			Limitations: "Must be used by the same person",
			Discount:    "15% discount on renewal",
		},
		{
			ID:          4,
			Type:        "Child Ticket",
			Price:       185,
			Validity:    "1 Day",
			Description: "Discounted ticket for children (ages 3-12)",
			Limitations: "Valid only on selected date, must be accompanied by an adult",
		},
		{
			ID:          5,
			Type:        "Group Ticket",
			Price:       220,
			Validity:    "1 Day",
			Description: "Special rate for groups of 10 or more",
			Limitations: "Must be booked in advance",
			Discount:    "20% off for groups of 20 or more",
		},
		{
			ID:          6,
			Type:        "VIP Experience Pass",
			Price:       550,
			Validity:    "1 Day",
			Description: "Includes expedited access and reserved seating for shows",
			Limitations: "Limited availability, must be purchased",
		},
	}
}
