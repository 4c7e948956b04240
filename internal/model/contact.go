package model

import "strings"

// Contact is a known counterparty from the user's contact book.
type Contact struct {
	ID    string
	Name  string
	Phone string
}

// Counterparty is the other side of a money movement: either a known
// contact or a free-form destination (phone number, business code).
// The zero value means "none selected".
type Counterparty struct {
	Contact     *Contact
	Destination string
}

// CounterpartyFromContact wraps a known contact.
func CounterpartyFromContact(c Contact) Counterparty {
	contact := c
	return Counterparty{Contact: &contact, Destination: c.Phone}
}

// CounterpartyFromString wraps a free-form destination.
func CounterpartyFromString(dest string) Counterparty {
	return Counterparty{Destination: strings.TrimSpace(dest)}
}

// IsZero reports whether no counterparty has been selected.
func (c Counterparty) IsZero() bool {
	return c.Contact == nil && strings.TrimSpace(c.Destination) == ""
}

// DisplayName returns the name to record on a transaction.
func (c Counterparty) DisplayName() string {
	if c.Contact != nil {
		return c.Contact.Name
	}
	return c.Destination
}

// DefaultContacts is the demo contact book shown in the send flow.
func DefaultContacts() []Contact {
	return []Contact{
		{ID: "1", Name: "Sarah Wilson", Phone: "+1 (555) 111-2222"},
		{ID: "2", Name: "Mike Johnson", Phone: "+1 (555) 222-3333"},
		{ID: "3", Name: "Emily Davis", Phone: "+1 (555) 333-4444"},
		{ID: "4", Name: "Alex Brown", Phone: "+1 (555) 444-5555"},
		{ID: "5", Name: "Jessica Lee", Phone: "+1 (555) 555-6666"},
		{ID: "6", Name: "David Miller", Phone: "+1 (555) 666-7777"},
	}
}

// DefaultBusinesses is the demo business directory shown in the pay flow.
func DefaultBusinesses() []Contact {
	return []Contact{
		{ID: "b1", Name: "Green Grocers", Phone: "GREEN001"},
		{ID: "b2", Name: "Metro Pharmacy", Phone: "METRO002"},
		{ID: "b3", Name: "City Hardware", Phone: "CITY003"},
		{ID: "b4", Name: "Fresh Bakery", Phone: "FRESH004"},
		{ID: "b5", Name: "Quick Fuel", Phone: "QUICK005"},
		{ID: "b6", Name: "Coffee Corner", Phone: "COFFEE006"},
	}
}
