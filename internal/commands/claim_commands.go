package commands

import (
	"fmt"
	"strings"

	"clientbook/internal/index"
	"clientbook/internal/insurance"
	"clientbook/internal/model"
)

const (
	AddClaimWord = "addClaim"
	AddClaimUsage = AddClaimWord + ": Adds a claim to an insurance plan of the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID c/CLAIM_ID amt/AMOUNT\n" +
		"Example: " + AddClaimWord + " 1 i/0 c/A1001 amt/150.00"
	MessageAddClaimSuccess = "Claim added for client: %s, Insurance plan: %s, Claim: %s"

	CloseClaimWord = "closeClaim"
	CloseClaimUsage = CloseClaimWord + ": Closes a claim on an insurance plan of the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID c/CLAIM_ID\n" +
		"Example: " + CloseClaimWord + " 1 i/0 c/A1001"
	MessageCloseClaimSuccess = "Claim closed for client: %s, Insurance plan: %s, Claim ID: %s"

	DeleteClaimWord = "deleteClaim"
	DeleteClaimUsage = DeleteClaimWord + ": Deletes a claim from an insurance plan of the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID c/CLAIM_ID\n" +
		"Example: " + DeleteClaimWord + " 1 i/0 c/A1001"
	MessageDeleteClaimSuccess = "Claim deleted for client: %s, Insurance plan: %s, Claim ID: %s"

	ListClaimsWord = "listClaims"
	ListClaimsUsage = ListClaimsWord + ": Lists the claims on an insurance plan of the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID\n" +
		"Example: " + ListClaimsWord + " 1 i/0"
	MessageListClaimsSuccess = "Claims for client: %s, Insurance plan: %s\n%s"
	MessageNoClaims          = "No claims for client: %s, Insurance plan: %s"
)

// claimTarget is the shared (client, plan, claim) address of the claim commands.
type claimTarget struct {
	Index       index.Index
	InsuranceID int
	ClaimID     string
}

// resolve finds the client and the plan it must already own.
func (t claimTarget) resolve(m Model) (*model.Client, insurance.Plan, error) {
	client, err := clientAt(m, t.Index)
	if err != nil {
		return nil, insurance.Plan{}, err
	}
	plan, err := insurance.NewPlan(t.InsuranceID)
	if err != nil {
		return nil, insurance.Plan{}, err
	}
	if err := client.Plans().CheckOwned(plan); err != nil {
		return nil, insurance.Plan{}, err
	}
	return client, plan, nil
}

type AddClaim struct {
	claimTarget
	AmountCents int64
}

func NewAddClaim(idx index.Index, insuranceID int, claimID string, amountCents int64) *AddClaim {
	return &AddClaim{claimTarget: claimTarget{idx, insuranceID, claimID}, AmountCents: amountCents}
}

func (c *AddClaim) Word() string { return AddClaimWord }

func (c *AddClaim) Execute(m Model) (Result, error) {
	client, plan, err := c.resolve(m)
	if err != nil {
		return Result{}, err
	}
	claim := insurance.NewClaim(c.ClaimID, c.AmountCents)
	if err := client.Plans().AddClaim(plan, claim); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddClaimSuccess, client.Name(), plan, claim)}, nil
}

func (c *AddClaim) Equal(other any) bool {
	o, ok := other.(*AddClaim)
	return ok && o != nil && *c == *o
}

type CloseClaim struct {
	claimTarget
}

func NewCloseClaim(idx index.Index, insuranceID int, claimID string) *CloseClaim {
	return &CloseClaim{claimTarget{idx, insuranceID, claimID}}
}

func (c *CloseClaim) Word() string { return CloseClaimWord }

func (c *CloseClaim) Execute(m Model) (Result, error) {
	client, plan, err := c.resolve(m)
	if err != nil {
		return Result{}, err
	}
	closed, err := client.Plans().CloseClaim(plan, c.ClaimID)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageCloseClaimSuccess, client.Name(), plan, closed.ID)}, nil
}

func (c *CloseClaim) Equal(other any) bool {
	o, ok := other.(*CloseClaim)
	return ok && o != nil && *c == *o
}

type DeleteClaim struct {
	claimTarget
}

func NewDeleteClaim(idx index.Index, insuranceID int, claimID string) *DeleteClaim {
	return &DeleteClaim{claimTarget{idx, insuranceID, claimID}}
}

func (c *DeleteClaim) Word() string { return DeleteClaimWord }

func (c *DeleteClaim) Execute(m Model) (Result, error) {
	client, plan, err := c.resolve(m)
	if err != nil {
		return Result{}, err
	}
	removed, err := client.Plans().DeleteClaim(plan, c.ClaimID)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteClaimSuccess, client.Name(), plan, removed.ID)}, nil
}

func (c *DeleteClaim) Equal(other any) bool {
	o, ok := other.(*DeleteClaim)
	return ok && o != nil && *c == *o
}

type ListClaims struct {
	Index       index.Index
	InsuranceID int
}

func NewListClaims(idx index.Index, insuranceID int) *ListClaims {
	return &ListClaims{Index: idx, InsuranceID: insuranceID}
}

func (c *ListClaims) Word() string { return ListClaimsWord }

func (c *ListClaims) Execute(m Model) (Result, error) {
	client, err := clientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	plan, err := client.Plans().Plan(c.InsuranceID)
	if err != nil {
		return Result{}, err
	}
	claims := plan.Claims()
	if len(claims) == 0 {
		return Result{Feedback: fmt.Sprintf(MessageNoClaims, client.Name(), plan)}, nil
	}
	lines := make([]string, len(claims))
	for i, cl := range claims {
		lines[i] = fmt.Sprintf("%d. %s", i+1, cl)
	}
	return Result{Feedback: fmt.Sprintf(MessageListClaimsSuccess, client.Name(), plan, strings.Join(lines, "\n"))}, nil
}

func (c *ListClaims) Equal(other any) bool {
	o, ok := other.(*ListClaims)
	return ok && o != nil && *c == *o
}
