package parser

import (
	"clientbook/internal/apperr"
	"clientbook/internal/commands"
)

// parseClaimArgs handles INDEX i/INSURANCE_ID c/CLAIM_ID plus extra prefixes.
func parseClaimArgs(args, usage string, extra ...Prefix) (planArgs, string, error) {
	pa, err := parsePlanArgs(args, usage, append([]Prefix{PrefixClaimID}, extra...)...)
	if err != nil {
		return planArgs{}, "", err
	}
	raw, _ := pa.am.Value(PrefixClaimID)
	claimID, err := ParseClaimID(raw)
	if err != nil {
		return planArgs{}, "", apperr.WithUsage(err, usage)
	}
	return pa, claimID, nil
}

func parseAddClaim(args string) (commands.Command, error) {
	pa, claimID, err := parseClaimArgs(args, commands.AddClaimUsage, PrefixAmount)
	if err != nil {
		return nil, err
	}
	raw, _ := pa.am.Value(PrefixAmount)
	amount, err := ParseAmount(raw)
	if err != nil {
		return nil, apperr.WithUsage(err, commands.AddClaimUsage)
	}
	return commands.NewAddClaim(pa.index, pa.insuranceID, claimID, amount), nil
}

// closeClaim INDEX i/INSURANCE_ID c/CLAIM_ID
func parseCloseClaim(args string) (commands.Command, error) {
	pa, claimID, err := parseClaimArgs(args, commands.CloseClaimUsage)
	if err != nil {
		return nil, err
	}
	return commands.NewCloseClaim(pa.index, pa.insuranceID, claimID), nil
}

func parseDeleteClaim(args string) (commands.Command, error) {
	pa, claimID, err := parseClaimArgs(args, commands.DeleteClaimUsage)
	if err != nil {
		return nil, err
	}
	return commands.NewDeleteClaim(pa.index, pa.insuranceID, claimID), nil
}
