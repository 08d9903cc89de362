package insurance

import (
	"slices"
	"strings"
)

// Manager holds the plans purchased by a single client, in insertion order.
// Plans are never shared between managers: values handed in are copied and
// values handed out are clones.
type Manager struct {
	owner string
	plans []*Plan
}

// NewManager returns an empty manager. owner is the client's display name and
// is used in ownership error messages.
func NewManager(owner string) *Manager {
	return &Manager{owner: owner}
}

func (m *Manager) Owner() string { return m.owner }

func (m *Manager) Rename(owner string) { m.owner = owner }

func (m *Manager) Len() int { return len(m.plans) }

// Plans returns a deep copy of the owned plans.
func (m *Manager) Plans() []Plan {
	out := make([]Plan, len(m.plans))
	for i, p := range m.plans {
		out[i] = p.Clone()
	}
	return out
}

// Plan looks up an owned plan by ID.
func (m *Manager) Plan(id int) (Plan, error) {
	for _, p := range m.plans {
		if p.ID() == id {
			return p.Clone(), nil
		}
	}
	return Plan{}, planNotOwned(id, m.owner)
}

// AddPlan appends unconditionally. Callers run CheckNotOwned first.
func (m *Manager) AddPlan(p Plan) {
	c := p.Clone()
	m.plans = append(m.plans, &c)
}

// DeletePlan removes the equal plan if present. Callers run CheckOwned first.
func (m *Manager) DeletePlan(p Plan) {
	i := m.indexOf(p)
	if i < 0 {
		return
	}
	m.plans = slices.Delete(m.plans, i, i+1)
}

// CheckOwned fails with PLAN_NOT_OWNED unless an equal plan is held.
func (m *Manager) CheckOwned(p Plan) error {
	if m.indexOf(p) < 0 {
		return planNotOwned(p.ID(), m.owner)
	}
	return nil
}

// CheckNotOwned fails with DUPLICATE_PLAN if an equal plan is already held.
func (m *Manager) CheckNotOwned(p Plan) error {
	if m.indexOf(p) >= 0 {
		return duplicatePlan(p.ID(), m.owner)
	}
	return nil
}

func (m *Manager) AddClaim(p Plan, c Claim) error {
	owned, err := m.owned(p)
	if err != nil {
		return err
	}
	return owned.AddClaim(c)
}

func (m *Manager) CloseClaim(p Plan, claimID string) (Claim, error) {
	owned, err := m.owned(p)
	if err != nil {
		return Claim{}, err
	}
	return owned.CloseClaim(claimID)
}

func (m *Manager) DeleteClaim(p Plan, claimID string) (Claim, error) {
	owned, err := m.owned(p)
	if err != nil {
		return Claim{}, err
	}
	return owned.DeleteClaim(claimID)
}

// Equal compares plans and their claims in order. The owner label is ignored.
func (m *Manager) Equal(other *Manager) bool {
	if other == nil || len(m.plans) != len(other.plans) {
		return false
	}
	for i, p := range m.plans {
		q := other.plans[i]
		if !p.Equal(*q) || !slices.Equal(p.claims, q.claims) {
			return false
		}
	}
	return true
}

func (m *Manager) Clone() *Manager {
	c := &Manager{owner: m.owner, plans: make([]*Plan, len(m.plans))}
	for i, p := range m.plans {
		cp := p.Clone()
		c.plans[i] = &cp
	}
	return c
}

func (m *Manager) String() string {
	if len(m.plans) == 0 {
		return "Insurance Plans: None"
	}
	names := make([]string, len(m.plans))
	for i, p := range m.plans {
		names[i] = p.String()
	}
	return "Insurance Plans: " + strings.Join(names, ", ")
}

func (m *Manager) owned(p Plan) (*Plan, error) {
	i := m.indexOf(p)
	if i < 0 {
		return nil, planNotOwned(p.ID(), m.owner)
	}
	return m.plans[i], nil
}

func (m *Manager) indexOf(p Plan) int {
	return slices.IndexFunc(m.plans, func(q *Plan) bool { return q.Equal(p) })
}
