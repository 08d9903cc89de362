package insurance

import "slices"

// Kind is the closed set of plan variants. The plan ID is the kind's number.
type Kind int

const (
	Travel Kind = iota
	Health
	Basic
)

var kindNames = map[Kind]string{
	Travel: "Travel Insurance",
	Health: "Health Insurance",
	Basic:  "Basic Insurance",
}

// KindOf maps a plan ID to its variant.
func KindOf(id int) (Kind, bool) {
	k := Kind(id)
	_, ok := kindNames[k]
	return k, ok
}

// Kinds lists every variant in ID order.
func Kinds() []Kind {
	return []Kind{Travel, Health, Basic}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown Insurance"
}

// Plan is one purchased plan and the claims filed against it.
type Plan struct {
	kind   Kind
	claims []Claim
}

// NewPlan builds an empty plan for the given ID.
func NewPlan(id int) (Plan, error) {
	k, ok := KindOf(id)
	if !ok {
		return Plan{}, unknownPlan(id)
	}
	return Plan{kind: k}, nil
}

func (p Plan) ID() int { return int(p.kind) }

func (p Plan) Kind() Kind { return p.kind }

func (p Plan) String() string { return p.kind.String() }

// Equal reports whether both plans are the same variant; the variant fixes the ID.
func (p Plan) Equal(other Plan) bool { return p.kind == other.kind }

// Claims returns a copy of the plan's claims in insertion order.
func (p Plan) Claims() []Claim { return slices.Clone(p.claims) }

func (p Plan) Claim(id string) (Claim, error) {
	i := p.indexOf(id)
	if i < 0 {
		return Claim{}, claimNotFound(id, &p)
	}
	return p.claims[i], nil
}

func (p Plan) Clone() Plan {
	return Plan{kind: p.kind, claims: slices.Clone(p.claims)}
}

func (p *Plan) AddClaim(c Claim) error {
	if p.indexOf(c.ID) >= 0 {
		return duplicateClaim(c.ID, p)
	}
	p.claims = append(p.claims, c)
	return nil
}

// CloseClaim moves an open claim to closed and returns the updated claim.
func (p *Plan) CloseClaim(id string) (Claim, error) {
	i := p.indexOf(id)
	if i < 0 {
		return Claim{}, claimNotFound(id, p)
	}
	if !p.claims[i].IsOpen() {
		return Claim{}, claimAlreadyClosed(id, p)
	}
	p.claims[i].Status = StatusClosed
	return p.claims[i], nil
}

func (p *Plan) DeleteClaim(id string) (Claim, error) {
	i := p.indexOf(id)
	if i < 0 {
		return Claim{}, claimNotFound(id, p)
	}
	removed := p.claims[i]
	p.claims = slices.Delete(p.claims, i, i+1)
	return removed, nil
}

func (p Plan) indexOf(id string) int {
	return slices.IndexFunc(p.claims, func(c Claim) bool { return c.ID == id })
}
