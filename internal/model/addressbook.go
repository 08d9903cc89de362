package model

import (
	"slices"

	"clientbook/internal/apperr"
)

const (
	CodeDuplicateClient    = "DUPLICATE_CLIENT"
	MessageDuplicateClient = "This client already exists in the address book"
)

var ErrDuplicateClient = apperr.Sentinel(CodeDuplicateClient)

// AddressBook is the ordered registry of every client.
type AddressBook struct {
	clients []*Client
}

func NewAddressBook(clients ...*Client) *AddressBook {
	return &AddressBook{clients: slices.Clone(clients)}
}

// Clients returns the clients in order. The slice is a copy; the clients are not.
func (b *AddressBook) Clients() []*Client { return slices.Clone(b.clients) }

func (b *AddressBook) Len() int { return len(b.clients) }

func (b *AddressBook) Has(c *Client) bool {
	return slices.ContainsFunc(b.clients, c.IsSame)
}

func (b *AddressBook) Add(c *Client) error {
	if b.Has(c) {
		return apperr.NewState(CodeDuplicateClient, MessageDuplicateClient)
	}
	b.clients = append(b.clients, c)
	return nil
}

// Remove drops the given client record; absent clients are ignored.
func (b *AddressBook) Remove(c *Client) {
	i := slices.Index(b.clients, c)
	if i < 0 {
		return
	}
	b.clients = slices.Delete(b.clients, i, i+1)
}

func (b *AddressBook) Equal(other *AddressBook) bool {
	if other == nil {
		return false
	}
	return slices.EqualFunc(b.clients, other.clients, func(x, y *Client) bool { return x.Equal(y) })
}

// Clone deep-copies every client and its plans.
func (b *AddressBook) Clone() *AddressBook {
	out := &AddressBook{clients: make([]*Client, len(b.clients))}
	for i, c := range b.clients {
		out.clients[i] = c.Clone()
	}
	return out
}
