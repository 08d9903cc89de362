package parser

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientbook/internal/apperr"
	"clientbook/internal/index"
	"clientbook/internal/insurance"
)

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("  1 ")
	require.NoError(t, err)
	assert.Equal(t, index.FromOneBased(1), idx)

	for _, bad := range []string{"", "0", "-1", "+1", "a", "1 2", "99999999999999999999"} {
		_, err := ParseIndex(bad)
		assert.ErrorIs(t, err, apperr.Sentinel(apperr.CodeInvalidIndex), "input %q", bad)
	}
}

func TestParseInsuranceID(t *testing.T) {
	id, err := ParseInsuranceID(" 1")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = ParseInsuranceID("abc")
	assert.ErrorIs(t, err, apperr.Sentinel(CodeInvalidInsuranceID))

	_, err = ParseInsuranceID("-1")
	assert.ErrorIs(t, err, apperr.Sentinel(CodeInvalidInsuranceID))

	_, err = ParseInsuranceID("42")
	assert.ErrorIs(t, err, insurance.ErrUnknownPlan)
	assert.True(t, apperr.IsFormat(err))
}

func TestParseClaimID(t *testing.T) {
	id, err := ParseClaimID(" A1001 ")
	require.NoError(t, err)
	assert.Equal(t, "A1001", id)

	for _, bad := range []string{"", "  ", "A-1", "A 1", "ABCDEFGHIJKLMNOPQRSTU"} {
		_, err := ParseClaimID(bad)
		assert.ErrorIs(t, err, apperr.Sentinel(CodeInvalidClaimID), "input %q", bad)
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int64
	}{
		"whole":      {in: "120", want: 12000},
		"one place":  {in: "120.5", want: 12050},
		"two places": {in: "0.05", want: 5},
		"padded":     {in: " 7.25 ", want: 725},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "-1", "1.234", "1,000", "abc", ".5"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, apperr.Sentinel(CodeInvalidAmount), "input %q", bad)
	}
}

func TestParseClient(t *testing.T) {
	f, err := ParseClient("  Amy   Bee ", " 85355255", "amy@gmail.com ", " 123, Jurong West ")
	require.NoError(t, err)
	assert.Equal(t, ClientFields{Name: "Amy Bee", Phone: "85355255", Email: "amy@gmail.com", Address: "123, Jurong West"}, f)

	tests := map[string]struct {
		name, phone, email, address string
		code                        string
	}{
		"bad name":      {name: "R@chel", phone: "123", email: "a@b.co", address: "x", code: CodeInvalidName},
		"bad phone":     {name: "Amy", phone: "+651234", email: "a@b.co", address: "x", code: CodeInvalidPhone},
		"short phone":   {name: "Amy", phone: "12", email: "a@b.co", address: "x", code: CodeInvalidPhone},
		"bad email":     {name: "Amy", phone: "123", email: "bob!yahoo", address: "x", code: CodeInvalidEmail},
		"blank address": {name: "Amy", phone: "123", email: "a@b.co", address: " ", code: CodeInvalidAddress},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseClient(tc.name, tc.phone, tc.email, tc.address)
			assert.ErrorIs(t, err, apperr.Sentinel(tc.code))
		})
	}
}

func TestNewValidatorRegistersPersonName(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = newValidator() })

	assert.NoError(t, v.Var("Amy Bee", "personname"))
	assert.Error(t, v.Var("R@chel", "personname"))
}
