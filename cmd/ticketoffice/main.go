package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/adventureland-park/ticket-office/internal/app"
	"github.com/adventureland-park/ticket-office/internal/clock"
	"github.com/adventureland-park/ticket-office/internal/config"
	"github.com/adventureland-park/ticket-office/internal/database"
	"github.com/adventureland-park/ticket-office/internal/domain"
	"github.com/adventureland-park/ticket-office/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Open the collection store (seeds the default admin on first run)
	st, err := store.Open(db, store.WithAdminSeed(cfg.AdminEmail, cfg.AdminPassword))
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Wire the service (seeds the default ticket catalog on first run)
	svc, err := app.NewService(st, clock.NewSystem())
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	ui := &console{svc: svc, in: bufio.NewScanner(os.Stdin)}
	ui.mainMenu()
}

type console struct {
	svc *app.Service
	in  *bufio.Scanner
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) mainMenu() {
	for {
		fmt.Println("\n=== Adventure Land Theme Park ===")
		fmt.Println("1) Customer login")
		fmt.Println("2) Register new account")
		fmt.Println("3) Admin login")
		fmt.Println("4) View ticket information")
		fmt.Println("5) Exit")
		switch c.prompt("> ") {
		case "1":
			c.customerLogin()
		case "2":
			c.register()
		case "3":
			c.adminLogin()
		case "4":
			c.showTickets()
		case "5":
			return
		}
	}
}

func (c *console) customerLogin() {
	email := c.prompt("Email: ")
	password := c.prompt("Password: ")
	if _, err := c.svc.AuthenticateCustomer(email, password); err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	c.customerDashboard()
}

func (c *console) register() {
	name := c.prompt("Name: ")
	email := c.prompt("Email: ")
	password := c.prompt("Password: ")
	phone := c.prompt("Phone number: ")
	if _, err := c.svc.Register(name, email, password, phone); err != nil {
		fmt.Println("Registration error:", err)
		return
	}
	fmt.Println("Registration successful! Please login.")
}

func (c *console) adminLogin() {
	email := c.prompt("Email: ")
	password := c.prompt("Password: ")
	if _, err := c.svc.AuthenticateAdmin(email, password); err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	c.adminDashboard()
}

func (c *console) showTickets() {
	fmt.Println("\n--- Available Tickets ---")
	for _, t := range c.svc.Tickets() {
		fmt.Printf("%d) %s - %.2f DHS\n", t.ID, t.Type, t.Price)
		fmt.Println("   Validity:", t.Validity)
		fmt.Println("   Description:", t.Description)
		fmt.Println("   Limitations:", t.Limitations)
		if t.Discount != "" {
			fmt.Println("   Discount:", t.Discount)
		}
	}
}

func (c *console) customerDashboard() {
	for {
		customer := c.svc.Session().Customer()
		if customer == nil {
			return
		}
		fmt.Printf("\n=== Welcome, %s ===\n", customer.Name)
		fmt.Println("1) Purchase tickets")
		fmt.Println("2) My reservations")
		fmt.Println("3) Edit profile")
		fmt.Println("4) Logout")
		switch c.prompt("> ") {
		case "1":
			c.purchase()
		case "2":
			c.reservations()
		case "3":
			c.editProfile()
		case "4":
			c.svc.Logout()
			return
		}
	}
}

func (c *console) purchase() {
	c.showTickets()
	id, err := strconv.Atoi(c.prompt("Ticket id: "))
	if err != nil {
		fmt.Println("Purchase error: invalid ticket selection")
		return
	}
	date := c.prompt("Visit date (YYYY-MM-DD): ")
	method := c.prompt("Payment method (Credit Card/Debit Card): ")
	if _, err := c.svc.Purchase(id, date, method); err != nil {
		fmt.Println("Purchase error:", err)
		return
	}
	fmt.Println("Ticket purchased successfully!")
}

func (c *console) reservations() {
	customer := c.svc.Session().Customer()
	if len(customer.Reservations) == 0 {
		fmt.Println("You have no reservations.")
		return
	}
	fmt.Println("\n--- My Reservations ---")
	for _, r := range customer.Reservations {
		fmt.Printf("%d) %s on %s\n", r.ID, r.Ticket.Type, r.Date)
	}
	input := c.prompt("Reservation id to cancel (blank to go back): ")
	if input == "" {
		return
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println("Invalid reservation id")
		return
	}
	for _, r := range customer.Reservations {
		if r.ID == id {
			if c.prompt("Cancel this reservation? (y/n): ") != "y" {
				return
			}
			if err := c.svc.Cancel(r); err != nil {
				fmt.Println("Cancel error:", err)
				return
			}
			fmt.Println("Reservation cancelled successfully!")
			return
		}
	}
	fmt.Println("Invalid reservation id")
}

func (c *console) editProfile() {
	customer := c.svc.Session().Customer()
	fmt.Println("Leave a field blank to keep its current value.")
	name := c.prompt(fmt.Sprintf("Name [%s]: ", customer.Name))
	if name == "" {
		name = customer.Name
	}
	email := c.prompt(fmt.Sprintf("Email [%s]: ", customer.Email))
	if email == "" {
		email = customer.Email
	}
	phone := c.prompt(fmt.Sprintf("Phone [%s]: ", customer.Phone))
	if phone == "" {
		phone = customer.Phone
	}
	if err := c.svc.EditProfile(name, email, phone); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Profile updated successfully!")
}

func (c *console) adminDashboard() {
	for {
		fmt.Println("\n=== Admin Dashboard ===")
		fmt.Println("1) Sales report")
		fmt.Println("2) Manage tickets")
		fmt.Println("3) Manage users")
		fmt.Println("4) Logout")
		switch c.prompt("> ") {
		case "1":
			c.salesReport()
		case "2":
			c.manageTickets()
		case "3":
			c.manageUsers()
		case "4":
			c.svc.Logout()
			return
		}
	}
}

func (c *console) salesReport() {
	report := c.svc.SalesReport()
	fmt.Println("\n--- Sales Report ---")
	fmt.Println("Tickets sold today:", report.TicketsSoldToday)
	fmt.Printf("Total revenue: %.2f DHS\n", report.TotalRevenue)
}

func (c *console) manageTickets() {
	c.showTickets()
	input := c.prompt("Ticket id to reprice (blank to go back): ")
	if input == "" {
		return
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println("Invalid ticket id")
		return
	}
	var ticket *domain.Ticket
	for _, t := range c.svc.Tickets() {
		if t.ID == id {
			ticket = t
			break
		}
	}
	if ticket == nil {
		fmt.Println("Invalid ticket id")
		return
	}
	price := c.prompt("New price: ")
	if err := c.svc.UpdateTicketPrice(ticket, price); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Ticket price updated successfully!")
}

func (c *console) manageUsers() {
	customers := c.svc.Customers()
	if len(customers) == 0 {
		fmt.Println("No registered customers.")
		return
	}
	fmt.Println("\n--- User Management ---")
	for _, cu := range customers {
		fmt.Printf("%d) %s (%s)\n", cu.ID, cu.Name, cu.Email)
	}
	input := c.prompt("Customer id to delete (blank to go back): ")
	if input == "" {
		return
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		fmt.Println("Invalid customer id")
		return
	}
	var customer *domain.Customer
	for _, cu := range customers {
		if cu.ID == id {
			customer = cu
			break
		}
	}
	if customer == nil {
		fmt.Println("Invalid customer id")
		return
	}
	if c.prompt(fmt.Sprintf("Delete user %s? (y/n): ", customer.Name)) != "y" {
		return
	}
	if err := c.svc.DeleteCustomer(customer); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("User deleted successfully!")
}
