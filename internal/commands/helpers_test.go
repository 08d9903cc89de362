package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbook/internal/model"
	"clientbook/internal/testutil"
)

func newTypicalModel() *model.Manager {
	return model.NewManager(testutil.TypicalBook())
}

// assertCommandSuccess runs cmd on actual and checks the feedback and that
// actual ends up matching expected.
func assertCommandSuccess(t *testing.T, cmd Command, actual *model.Manager, wantFeedback string, expected *model.Manager) {
	t.Helper()
	res, err := cmd.Execute(actual)
	require.NoError(t, err)
	assert.Equal(t, wantFeedback, res.Feedback)
	assert.True(t, expected.Book().Equal(actual.Book()), "address book differs from expected")
	assertSameClients(t, expected.FilteredClients(), actual.FilteredClients())
}

// assertCommandFailure runs cmd on actual and checks it fails with target
// while leaving the book and filtered list untouched.
func assertCommandFailure(t *testing.T, cmd Command, actual *model.Manager, target error, wantMessage string) {
	t.Helper()
	bookBefore := actual.Book().Clone()
	filteredBefore := actual.FilteredClients()

	_, err := cmd.Execute(actual)
	require.Error(t, err)
	assert.ErrorIs(t, err, target)
	if wantMessage != "" {
		assert.Equal(t, wantMessage, err.Error())
	}
	assert.True(t, bookBefore.Equal(actual.Book()), "failed command mutated the address book")
	assert.Equal(t, filteredBefore, actual.FilteredClients())
}

func assertSameClients(t *testing.T, want, got []*model.Client) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "client %d differs", i)
	}
}
