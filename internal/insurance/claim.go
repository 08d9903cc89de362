package insurance

import "fmt"

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// ParseStatus accepts the persisted status names.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), true
	}
	return "", false
}

// Claim is a payout request against one plan. IDs are unique within that plan only.
type Claim struct {
	ID          string
	Status      Status
	AmountCents int64
}

// NewClaim returns an open claim.
func NewClaim(id string, amountCents int64) Claim {
	return Claim{ID: id, Status: StatusOpen, AmountCents: amountCents}
}

func (c Claim) IsOpen() bool { return c.Status == StatusOpen }

func (c Claim) String() string {
	return fmt.Sprintf("%s | %s | %s", c.ID, c.Status, FormatAmount(c.AmountCents))
}

// FormatAmount renders cents as dollars, e.g. 12050 -> "$120.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
