// Package testutil provides fixed fixtures shared by package tests.
package testutil

import (
	"github.com/google/uuid"

	"clientbook/internal/index"
	"clientbook/internal/insurance"
	"clientbook/internal/model"
)

var (
	IndexFirst  = index.FromOneBased(1)
	IndexSecond = index.FromOneBased(2)
	IndexThird  = index.FromOneBased(3)
	IndexFourth = index.FromOneBased(4)
)

type claimSpec struct {
	id     string
	amount int64
	closed bool
}

type planSpec struct {
	id     int
	claims []claimSpec
}

type clientSpec struct {
	name, phone, email, address string
	plans                       []planSpec
}

var typical = []clientSpec{
	{name: "Alice Pauline", phone: "94351253", email: "alice@example.com", address: "123, Jurong West Ave 6, #08-111"},
	{name: "Benson Meier", phone: "98765432", email: "johnd@example.com", address: "311, Clementi Ave 2, #02-25",
		plans: []planSpec{{id: 1}}},
	{name: "Carl Kurz", phone: "95352563", email: "heinz@example.com", address: "wall street"},
	{name: "Daniel Meier", phone: "87652533", email: "cornelia@example.com", address: "10th street",
		plans: []planSpec{
			{id: 0, claims: []claimSpec{
				{id: "A1001", amount: 15000},
				{id: "B1122", amount: 2500},
				{id: "C2001", amount: 800, closed: true},
			}},
			{id: 1, claims: []claimSpec{{id: "H3003", amount: 42000}}},
		}},
	{name: "Elle Meyer", phone: "9482224", email: "werner@example.com", address: "michegan ave",
		plans: []planSpec{{id: 2}}},
	{name: "Fiona Kunz", phone: "9482427", email: "lydia@example.com", address: "little tokyo"},
	{name: "George Best", phone: "9482442", email: "anna@example.com", address: "4th street"},
}

// ClientID derives a stable ID from a name so fixtures compare equal across calls.
func ClientID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

// TypicalClients builds fresh copies of the fixture clients.
func TypicalClients() []*model.Client {
	out := make([]*model.Client, 0, len(typical))
	for _, s := range typical {
		plans := insurance.NewManager(s.name)
		for _, ps := range s.plans {
			p, err := insurance.NewPlan(ps.id)
			if err != nil {
				panic(err)
			}
			plans.AddPlan(p)
			for _, cs := range ps.claims {
				if err := plans.AddClaim(p, insurance.NewClaim(cs.id, cs.amount)); err != nil {
					panic(err)
				}
				if cs.closed {
					if _, err := plans.CloseClaim(p, cs.id); err != nil {
						panic(err)
					}
				}
			}
		}
		out = append(out, model.RestoreClient(ClientID(s.name), s.name, s.phone, s.email, s.address, plans))
	}
	return out
}

// TypicalBook returns an address book holding TypicalClients.
func TypicalBook() *model.AddressBook {
	return model.NewAddressBook(TypicalClients()...)
}

// ShowClientAt narrows m's filter to just the client at idx.
func ShowClientAt(m *model.Manager, idx index.Index) {
	target := m.FilteredClients()[idx.ZeroBased()]
	m.UpdateFilter(func(c *model.Client) bool { return c == target })
}
