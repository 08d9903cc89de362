package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbook/internal/index"
	"clientbook/internal/model"
	"clientbook/internal/testutil"
)

func TestAddClient(t *testing.T) {
	m := newTypicalModel()

	res, err := NewAddClient("Hoon Meier", "8482424", "stefan@example.com", "little india").Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "New client added: Hoon Meier; Phone: 8482424; Email: stefan@example.com; Address: little india; Insurance Plans: None", res.Feedback)
	assert.Equal(t, 8, m.Book().Len())

	assertCommandFailure(t, NewAddClient("hoon meier", "1", "x@y.z", "a"), m, model.ErrDuplicateClient, model.MessageDuplicateClient)
}

func TestDeleteClient(t *testing.T) {
	m := newTypicalModel()
	first := m.FilteredClients()[0]

	res, err := NewDeleteClient(testutil.IndexFirst).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "Deleted Client: "+first.String(), res.Feedback)
	assert.False(t, m.HasClient(first))

	assertCommandFailure(t, NewDeleteClient(index.FromOneBased(7)), m, ErrInvalidClientIndex, "")
}

func TestFindAndList(t *testing.T) {
	m := newTypicalModel()

	res, err := NewFind([]string{"Kurz", "Elle", "Kunz"}).Execute(m)
	require.NoError(t, err)
	assert.Equal(t, "3 clients listed!", res.Feedback)
	require.Len(t, m.FilteredClients(), 3)
	assert.Equal(t, "Carl Kurz", m.FilteredClients()[0].Name())

	res, err = List{}.Execute(m)
	require.NoError(t, err)
	assert.Equal(t, MessageListSuccess, res.Feedback)
	assert.Len(t, m.FilteredClients(), 7)
}
