package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"clientbook/internal/insurance"
)

// Client is a contact record. It owns exactly one plan manager for its lifetime.
type Client struct {
	id      uuid.UUID
	name    string
	phone   string
	email   string
	address string
	plans   *insurance.Manager
}

// NewClient creates a client with a fresh ID and no plans.
func NewClient(name, phone, email, address string) *Client {
	return RestoreClient(uuid.New(), name, phone, email, address, nil)
}

// RestoreClient rebuilds a stored client. A nil plans manager means no plans.
func RestoreClient(id uuid.UUID, name, phone, email, address string, plans *insurance.Manager) *Client {
	if plans == nil {
		plans = insurance.NewManager(name)
	}
	plans.Rename(name)
	return &Client{id: id, name: name, phone: phone, email: email, address: address, plans: plans}
}

func (c *Client) ID() uuid.UUID   { return c.id }
func (c *Client) Name() string    { return c.name }
func (c *Client) Phone() string   { return c.phone }
func (c *Client) Email() string   { return c.email }
func (c *Client) Address() string { return c.address }

// Plans returns the client's own plan manager; mutations through it change the client.
func (c *Client) Plans() *insurance.Manager { return c.plans }

// IsSame reports whether both records describe the same person. Names are
// compared case-insensitively; other fields are ignored.
func (c *Client) IsSame(other *Client) bool {
	if other == nil {
		return false
	}
	return strings.EqualFold(c.name, other.name)
}

// Equal compares every field, including plans and claims.
func (c *Client) Equal(other *Client) bool {
	if other == nil {
		return false
	}
	return c.id == other.id &&
		c.name == other.name &&
		c.phone == other.phone &&
		c.email == other.email &&
		c.address == other.address &&
		c.plans.Equal(other.plans)
}

func (c *Client) Clone() *Client {
	return &Client{
		id:      c.id,
		name:    c.name,
		phone:   c.phone,
		email:   c.email,
		address: c.address,
		plans:   c.plans.Clone(),
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; %s",
		c.name, c.phone, c.email, c.address, c.plans)
}
