package commands

import (
	"fmt"
	"strings"

	"clientbook/internal/apperr"
	"clientbook/internal/index"
	"clientbook/internal/model"
)

const (
	AddClientWord = "add"
	AddClientUsage = AddClientWord + ": Adds a client to the address book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS\n" +
		"Example: " + AddClientWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25"
	MessageAddClientSuccess = "New client added: %s"

	DeleteClientWord = "delete"
	DeleteClientUsage = DeleteClientWord + ": Deletes the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteClientWord + " 1"
	MessageDeleteClientSuccess = "Deleted Client: %s"

	ListWord           = "list"
	ListUsage          = ListWord + ": Lists all clients."
	MessageListSuccess = "Listed all clients"

	FindWord = "find"
	FindUsage = FindWord + ": Finds all clients whose names contain any of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindWord + " alice bob charlie"
	MessageClientsListed = "%d clients listed!"
)

type AddClient struct {
	Name, Phone, Email, Address string
}

func NewAddClient(name, phone, email, address string) *AddClient {
	return &AddClient{Name: name, Phone: phone, Email: email, Address: address}
}

func (c *AddClient) Word() string { return AddClientWord }

func (c *AddClient) Execute(m Model) (Result, error) {
	client := model.NewClient(c.Name, c.Phone, c.Email, c.Address)
	if m.HasClient(client) {
		return Result{}, apperr.NewState(model.CodeDuplicateClient, model.MessageDuplicateClient)
	}
	if err := m.AddClient(client); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddClientSuccess, client)}, nil
}

type DeleteClient struct {
	Index index.Index
}

func NewDeleteClient(idx index.Index) *DeleteClient { return &DeleteClient{Index: idx} }

func (c *DeleteClient) Word() string { return DeleteClientWord }

func (c *DeleteClient) Execute(m Model) (Result, error) {
	client, err := clientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	m.DeleteClient(client)
	return Result{Feedback: fmt.Sprintf(MessageDeleteClientSuccess, client)}, nil
}

func (c *DeleteClient) Equal(other any) bool {
	o, ok := other.(*DeleteClient)
	return ok && o != nil && *c == *o
}

type List struct{}

func (List) Word() string { return ListWord }

func (List) Execute(m Model) (Result, error) {
	m.UpdateFilter(nil)
	return Result{Feedback: MessageListSuccess}, nil
}

type Find struct {
	Keywords []string
}

func NewFind(keywords []string) *Find { return &Find{Keywords: keywords} }

func (c *Find) Word() string { return FindWord }

func (c *Find) Execute(m Model) (Result, error) {
	m.UpdateFilter(model.NameContainsKeywords(c.Keywords))
	return Result{Feedback: fmt.Sprintf(MessageClientsListed, len(m.FilteredClients()))}, nil
}

func (c *Find) String() string { return FindWord + " " + strings.Join(c.Keywords, " ") }
