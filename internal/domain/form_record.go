package domain

import "time"

// FormRecord is the validated, typed output of one imported spreadsheet row.
// Records are immutable once built; the synthesizer consumes them to mint
// tickets and they are discarded afterwards.
type FormRecord struct {
	ID              string
	Timestamp       time.Time
	Email           string
	Name            string
	Department      string
	ServiceType     string
	Priority        TicketPriority
	Title           string
	Description     string
	Category        string
	Urgency         string
	Impact          string
	PhoneNumber     *string
	ManagerApproval *bool
}
