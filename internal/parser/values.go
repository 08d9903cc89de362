package parser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"clientbook/internal/apperr"
	"clientbook/internal/index"
	"clientbook/internal/insurance"
)

const (
	CodeInvalidInsuranceID = "INVALID_INSURANCE_ID"
	CodeInvalidClaimID     = "INVALID_CLAIM_ID"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInvalidName        = "INVALID_NAME"
	CodeInvalidPhone       = "INVALID_PHONE"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidAddress     = "INVALID_ADDRESS"
)

const (
	MessageInvalidIndex       = "Index is not a non-zero unsigned integer."
	MessageInvalidInsuranceID = "Insurance ID should be a non-negative integer."
	MessageInvalidClaimID     = "Claim ID should only contain alphanumeric characters, be at most 20 characters long, and it should not be blank."
	MessageInvalidAmount      = "Claim amount should be a non-negative number with at most 2 decimal places."
	MessageInvalidName        = "Names should only contain alphanumeric characters and spaces, and it should not be blank."
	MessageInvalidPhone       = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long."
	MessageInvalidEmail       = "Emails should be of the format local-part@domain."
	MessageInvalidAddress     = "Addresses can take any values, and it should not be blank."
)

var (
	validate     = newValidator()
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
	amountFormat = regexp.MustCompile(`^([0-9]{1,9})(?:\.([0-9]{1,2}))?$`)
	personName   = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personName.MatchString(fl.Field().String())
	}); err != nil {
		panic("parser: register personname validation: " + err.Error())
	}
	return v
}

// ParseIndex parses a 1-based index.
func ParseIndex(s string) (index.Index, error) {
	s = strings.TrimSpace(s)
	if !digitsOnly.MatchString(s) {
		return index.Index{}, apperr.NewFormat(apperr.CodeInvalidIndex, MessageInvalidIndex, "")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return index.Index{}, apperr.NewFormat(apperr.CodeInvalidIndex, MessageInvalidIndex, "")
	}
	return index.FromOneBased(n), nil
}

// ParseInsuranceID parses a plan ID and checks it names a known plan.
func ParseInsuranceID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !digitsOnly.MatchString(s) {
		return 0, apperr.NewFormat(CodeInvalidInsuranceID, MessageInvalidInsuranceID, "")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.NewFormat(CodeInvalidInsuranceID, MessageInvalidInsuranceID, "")
	}
	if _, err := insurance.NewPlan(id); err != nil {
		return 0, err
	}
	return id, nil
}

func ParseClaimID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,alphanum,max=20"); err != nil {
		return "", apperr.NewFormat(CodeInvalidClaimID, MessageInvalidClaimID, "")
	}
	return s, nil
}

// ParseAmount parses a dollar amount into cents: "120" -> 12000, "120.5" -> 12050.
func ParseAmount(s string) (int64, error) {
	m := amountFormat.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, apperr.NewFormat(CodeInvalidAmount, MessageInvalidAmount, "")
	}
	dollars, _ := strconv.ParseInt(m[1], 10, 64)
	frac := m[2]
	for len(frac) < 2 {
		frac += "0"
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)
	return dollars*100 + cents, nil
}

// ClientFields are the validated fields of a new client.
type ClientFields struct {
	Name    string `validate:"required,personname,max=100"`
	Phone   string `validate:"required,number,min=3,max=15"`
	Email   string `validate:"required,email"`
	Address string `validate:"required"`
}

var fieldErrors = map[string]*apperr.Error{
	"Name":    apperr.NewFormat(CodeInvalidName, MessageInvalidName, ""),
	"Phone":   apperr.NewFormat(CodeInvalidPhone, MessageInvalidPhone, ""),
	"Email":   apperr.NewFormat(CodeInvalidEmail, MessageInvalidEmail, ""),
	"Address": apperr.NewFormat(CodeInvalidAddress, MessageInvalidAddress, ""),
}

// ParseClient trims and validates the fields of a new client.
func ParseClient(name, phone, email, address string) (ClientFields, error) {
	f := ClientFields{
		Name:    strings.Join(strings.Fields(name), " "),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}
	err := validate.Struct(f)
	if err == nil {
		return f, nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if fe, ok := fieldErrors[verrs[0].Field()]; ok {
			e := *fe
			return ClientFields{}, &e
		}
	}
	return ClientFields{}, apperr.NewFormat(apperr.CodeInvalidValue, err.Error(), "")
}
