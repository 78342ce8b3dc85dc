package domain

import "time"

type ContactSubmission struct {
	ID         uint
	Name       string
	Email      string
	Phone      *string
	Subject    *string
	Message    string
	IsRead     bool
	Status     string
	AdminReply *string
	RepliedAt  *time.Time
	CreatedAt  time.Time
}

const ContactStatusPending = "pending"

// QuoteRequestSubjectPrefix marks the contact_submissions rows mirrored from
// order submissions. The inbox union keys on it to keep each quote request
// to a single entry.
const QuoteRequestSubjectPrefix = "Quote Request #"

// InboxEntry is one row of the unified admin inbox, a read-side union of
// contact submissions and quote-request orders.
type InboxEntry struct {
	Kind      string // "contact" or "quote_request"
	ID        uint
	Name      string
	Email     string
	Subject   string
	Status    string
	IsRead    bool
	CreatedAt time.Time
}

const (
	InboxKindContact      = "contact"
	InboxKindQuoteRequest = "quote_request"
)
