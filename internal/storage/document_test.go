package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbook/internal/apperr"
	"clientbook/internal/insurance"
	"clientbook/internal/parser"
	"clientbook/internal/storage"
	"clientbook/internal/testutil"
)

func TestMarshalRoundTripKeepsPlansAndClaims(t *testing.T) {
	book := testutil.TypicalBook()

	data, err := storage.Marshal(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Travel Insurance"`)
	assert.Contains(t, string(data), `"status": "closed"`)

	got, err := storage.Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, book.Equal(got))

	daniel := got.Clients()[3]
	assert.Equal(t, "Daniel Meier", daniel.Plans().Owner())
	travel, err := daniel.Plans().Plan(0)
	require.NoError(t, err)
	closed, err := travel.Claim("C2001")
	require.NoError(t, err)
	assert.False(t, closed.IsOpen())
}

func TestUnmarshalEmpty(t *testing.T) {
	book, err := storage.Unmarshal(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())

	book, err = storage.Unmarshal([]byte(`{"clients":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

const validID = "5b0c2e2e-4b7a-4c1f-9f38-0f5a7d8e9a10"

func clientJSON(id, name, plans string) string {
	return `{"clients":[{"id":"` + id + `","name":"` + name +
		`","phone":"123","email":"a@b.co","address":"x","plans":` + plans + `}]}`
}

func TestUnmarshalRejectsInvalidDocuments(t *testing.T) {
	tests := map[string]struct {
		doc    string
		target error
	}{
		"malformed json": {
			doc: `{"clients":`,
		},
		"bad uuid": {
			doc: clientJSON("nope", "Amy", `[]`),
		},
		"missing name": {
			doc:    clientJSON(validID, "", `[]`),
			target: apperr.Sentinel(parser.CodeInvalidName),
		},
		"unknown plan": {
			doc:    clientJSON(validID, "Amy", `[{"id":7,"claims":[]}]`),
			target: insurance.ErrUnknownPlan,
		},
		"duplicate plan": {
			doc:    clientJSON(validID, "Amy", `[{"id":1,"claims":[]},{"id":1,"claims":[]}]`),
			target: insurance.ErrDuplicatePlan,
		},
		"duplicate claim": {
			doc: clientJSON(validID, "Amy",
				`[{"id":0,"claims":[{"id":"A1","status":"open","amount_cents":1},{"id":"A1","status":"open","amount_cents":2}]}]`),
			target: insurance.ErrDuplicateClaim,
		},
		"claim id not alphanumeric": {
			doc:    clientJSON(validID, "Amy", `[{"id":0,"claims":[{"id":"A-1","status":"open","amount_cents":1}]}]`),
			target: apperr.Sentinel(parser.CodeInvalidClaimID),
		},
		"claim id too long": {
			doc: clientJSON(validID, "Amy",
				`[{"id":0,"claims":[{"id":"ABCDEFGHIJKLMNOPQRSTU","status":"open","amount_cents":1}]}]`),
			target: apperr.Sentinel(parser.CodeInvalidClaimID),
		},
		"bad phone": {
			doc: `{"clients":[{"id":"` + validID +
				`","name":"Amy","phone":"12x","email":"a@b.co","address":"x","plans":[]}]}`,
			target: apperr.Sentinel(parser.CodeInvalidPhone),
		},
		"bad email": {
			doc: `{"clients":[{"id":"` + validID +
				`","name":"Amy","phone":"123","email":"amy","address":"x","plans":[]}]}`,
			target: apperr.Sentinel(parser.CodeInvalidEmail),
		},
		"blank address": {
			doc: `{"clients":[{"id":"` + validID +
				`","name":"Amy","phone":"123","email":"a@b.co","address":" ","plans":[]}]}`,
			target: apperr.Sentinel(parser.CodeInvalidAddress),
		},
		"bad status": {
			doc: clientJSON(validID, "Amy", `[{"id":0,"claims":[{"id":"A1","status":"pending","amount_cents":1}]}]`),
		},
		"negative amount": {
			doc: clientJSON(validID, "Amy", `[{"id":0,"claims":[{"id":"A1","status":"open","amount_cents":-1}]}]`),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := storage.Unmarshal([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, storage.ErrInvalidDocument)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestUnmarshalRejectsDuplicateClients(t *testing.T) {
	one := `{"id":"` + validID + `","name":"Amy","phone":"123","email":"a@b.co","address":"x","plans":[]}`
	two := strings.Replace(one, `"Amy"`, `"AMY"`, 1)

	_, err := storage.Unmarshal([]byte(`{"clients":[` + one + `,` + two + `]}`))
	assert.ErrorIs(t, err, storage.ErrInvalidDocument)
}
