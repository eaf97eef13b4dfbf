package rental

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AgreementIDPrefix is prepended to the counter value of every agreement ID.
const AgreementIDPrefix = "RA"

// House represents a rental property
type House struct {
	ID       string
	Location string
	Price    float64
	Bedrooms int
	Owner    string
	Booked   bool
	TenantID string // empty unless Booked
}

func (h House) String() string {
	return fmt.Sprintf("[%s, %s, %.0f, %d, %s]", h.ID, h.Location, h.Price, h.Bedrooms, h.Owner)
}

// Tenant represents a registered tenant
type Tenant struct {
	ID                string
	Name              string
	Contact           string
	PreferredLocation string
}

// Payment is a single rent payment recorded against an agreement
type Payment struct {
	Date   time.Time
	Amount float64
}

// Agreement is a lease between one house and one tenant. The house and
// tenant are referenced by ID and resolved through the Store.
type Agreement struct {
	ID        string
	HouseID   string
	TenantID  string
	StartDate time.Time
	EndDate   time.Time
	Deposit   float64
	Payments  []Payment
}

// NextDueDate is the start date advanced one month per recorded payment.
func (a *Agreement) NextDueDate() time.Time {
	return AddMonths(a.StartDate, len(a.Payments))
}

// IsOverdue reports whether today is strictly after the next due date.
func (a *Agreement) IsOverdue(today time.Time) bool {
	return Date(today).After(a.NextDueDate())
}

// DueStatus is the result of a due-date check
type DueStatus struct {
	AgreementID string
	NextDueDate time.Time
	Overdue     bool
}

// AgreementSeq extracts the numeric counter from an agreement ID such as "RA12".
func AgreementSeq(id string) (int, bool) {
	if !strings.HasPrefix(id, AgreementIDPrefix) {
		return 0, false
	}
	suffix := id[len(AgreementIDPrefix):]
	if suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

func cloneAgreement(a *Agreement) *Agreement {
	c := *a
	c.Payments = append([]Payment(nil), a.Payments...)
	return &c
}
