package storage

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"clientbook/internal/insurance"
	"clientbook/internal/model"
	"clientbook/internal/parser"
)

// ErrInvalidDocument is returned when stored data decodes but does not
// describe a valid address book.
var ErrInvalidDocument = errors.New("invalid address book document")

// Document is the persisted form of an address book.
type Document struct {
	Clients []ClientDocument `json:"clients"`
}

type ClientDocument struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Address string         `json:"address"`
	Plans   []PlanDocument `json:"plans"`
}

// PlanDocument stores the plan ID; Name is informational and ignored on decode.
type PlanDocument struct {
	ID     int             `json:"id"`
	Name   string          `json:"name,omitempty"`
	Claims []ClaimDocument `json:"claims"`
}

type ClaimDocument struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AmountCents int64  `json:"amount_cents"`
}

// NewDocument captures the current state of book.
func NewDocument(book *model.AddressBook) Document {
	doc := Document{Clients: make([]ClientDocument, 0, book.Len())}
	for _, c := range book.Clients() {
		cd := ClientDocument{
			ID:      c.ID().String(),
			Name:    c.Name(),
			Phone:   c.Phone(),
			Email:   c.Email(),
			Address: c.Address(),
			Plans:   []PlanDocument{},
		}
		for _, p := range c.Plans().Plans() {
			pd := PlanDocument{ID: p.ID(), Name: p.String(), Claims: []ClaimDocument{}}
			for _, cl := range p.Claims() {
				pd.Claims = append(pd.Claims, ClaimDocument{
					ID:          cl.ID,
					Status:      string(cl.Status),
					AmountCents: cl.AmountCents,
				})
			}
			cd.Plans = append(cd.Plans, pd)
		}
		doc.Clients = append(doc.Clients, cd)
	}
	return doc
}

// Book rebuilds the address book, rejecting anything the model would not allow.
func (d Document) Book() (*model.AddressBook, error) {
	book := model.NewAddressBook()
	for i, cd := range d.Clients {
		c, err := cd.client()
		if err != nil {
			return nil, fmt.Errorf("%w: client %d: %w", ErrInvalidDocument, i+1, err)
		}
		if err := book.Add(c); err != nil {
			return nil, fmt.Errorf("%w: client %d: %w", ErrInvalidDocument, i+1, err)
		}
	}
	return book, nil
}

func (cd ClientDocument) client() (*model.Client, error) {
	id, err := uuid.Parse(cd.ID)
	if err != nil {
		return nil, fmt.Errorf("id %q: %w", cd.ID, err)
	}
	if _, err := parser.ParseClient(cd.Name, cd.Phone, cd.Email, cd.Address); err != nil {
		return nil, err
	}
	plans := insurance.NewManager(cd.Name)
	for _, pd := range cd.Plans {
		p, err := pd.plan()
		if err != nil {
			return nil, err
		}
		if err := plans.CheckNotOwned(p); err != nil {
			return nil, err
		}
		plans.AddPlan(p)
	}
	return model.RestoreClient(id, cd.Name, cd.Phone, cd.Email, cd.Address, plans), nil
}

func (pd PlanDocument) plan() (insurance.Plan, error) {
	p, err := insurance.NewPlan(pd.ID)
	if err != nil {
		return insurance.Plan{}, err
	}
	for _, cd := range pd.Claims {
		status, ok := insurance.ParseStatus(cd.Status)
		if !ok {
			return insurance.Plan{}, fmt.Errorf("claim %s: unknown status %q", cd.ID, cd.Status)
		}
		if _, err := parser.ParseClaimID(cd.ID); err != nil {
			return insurance.Plan{}, fmt.Errorf("claim %q: %w", cd.ID, err)
		}
		if cd.AmountCents < 0 {
			return insurance.Plan{}, fmt.Errorf("claim %s: negative amount", cd.ID)
		}
		if err := p.AddClaim(insurance.NewClaim(cd.ID, cd.AmountCents)); err != nil {
			return insurance.Plan{}, err
		}
		if status == insurance.StatusClosed {
			if _, err := p.CloseClaim(cd.ID); err != nil {
				return insurance.Plan{}, err
			}
		}
	}
	return p, nil
}

// Marshal encodes book as an indented JSON document.
func Marshal(book *model.AddressBook) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(book), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode address book: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a JSON document. Empty input is an empty book.
func Unmarshal(data []byte) (*model.AddressBook, error) {
	if len(data) == 0 {
		return model.NewAddressBook(), nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc.Book()
}
