package model

import (
	"slices"
	"strings"
)

// Predicate narrows the displayed client list.
type Predicate func(*Client) bool

// ShowAll is the predicate used when no filter is active.
func ShowAll(*Client) bool { return true }

// NameContainsKeywords matches clients whose name contains any keyword as a
// whole word, ignoring case.
func NameContainsKeywords(keywords []string) Predicate {
	return func(c *Client) bool {
		words := strings.Fields(c.Name())
		for _, k := range keywords {
			if slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) }) {
				return true
			}
		}
		return false
	}
}

// Manager is the in-memory model the commands operate on: the address book
// plus the current display filter.
type Manager struct {
	book   *AddressBook
	filter Predicate
}

func NewManager(book *AddressBook) *Manager {
	if book == nil {
		book = NewAddressBook()
	}
	return &Manager{book: book, filter: ShowAll}
}

func (m *Manager) Book() *AddressBook { return m.book }

// RestoreBook swaps in a previous copy of the address book. The filter is
// kept, so displayed indices resolve as they did before.
func (m *Manager) RestoreBook(book *AddressBook) {
	m.book = book
}

// FilteredClients returns the displayed clients in book order.
func (m *Manager) FilteredClients() []*Client {
	var out []*Client
	for _, c := range m.book.clients {
		if m.filter(c) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateFilter sets the display filter; nil shows everyone.
func (m *Manager) UpdateFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.filter = p
}

func (m *Manager) HasClient(c *Client) bool { return m.book.Has(c) }

// AddClient adds c and resets the filter so the new client is visible.
func (m *Manager) AddClient(c *Client) error {
	if err := m.book.Add(c); err != nil {
		return err
	}
	m.filter = ShowAll
	return nil
}

func (m *Manager) DeleteClient(c *Client) { m.book.Remove(c) }
