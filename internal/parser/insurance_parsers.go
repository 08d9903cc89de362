package parser

import (
	"clientbook/internal/apperr"
	"clientbook/internal/commands"
	"clientbook/internal/index"
)

// planArgs is what every plan-addressed command shares: INDEX i/INSURANCE_ID.
type planArgs struct {
	index       index.Index
	insuranceID int
	am          ArgumentMultimap
}

// parsePlanArgs tokenizes args, requires i/ plus any extra prefixes, and
// parses the index and plan ID. Value errors carry usage.
func parsePlanArgs(args, usage string, extra ...Prefix) (planArgs, error) {
	prefixes := append([]Prefix{PrefixInsuranceID}, extra...)
	am := Tokenize(args, prefixes...)
	if !am.Present(prefixes...) {
		return planArgs{}, invalidFormat(usage)
	}
	if err := am.VerifyNoDuplicates(prefixes...); err != nil {
		return planArgs{}, apperr.WithUsage(err, usage)
	}
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return planArgs{}, apperr.WithUsage(err, usage)
	}
	raw, _ := am.Value(PrefixInsuranceID)
	id, err := ParseInsuranceID(raw)
	if err != nil {
		return planArgs{}, apperr.WithUsage(err, usage)
	}
	return planArgs{index: idx, insuranceID: id, am: am}, nil
}

func parseAddInsurance(args string) (commands.Command, error) {
	pa, err := parsePlanArgs(args, commands.AddInsuranceUsage)
	if err != nil {
		return nil, err
	}
	return commands.NewAddInsurance(pa.index, pa.insuranceID), nil
}

// deleteInsurance INDEX i/INSURANCE_ID
func parseDeleteInsurance(args string) (commands.Command, error) {
	pa, err := parsePlanArgs(args, commands.DeleteInsuranceUsage)
	if err != nil {
		return nil, err
	}
	return commands.NewDeleteInsurance(pa.index, pa.insuranceID), nil
}

func parseListClaims(args string) (commands.Command, error) {
	pa, err := parsePlanArgs(args, commands.ListClaimsUsage)
	if err != nil {
		return nil, err
	}
	return commands.NewListClaims(pa.index, pa.insuranceID), nil
}
