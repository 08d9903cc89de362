package insurance

import (
	"fmt"

	"clientbook/internal/apperr"
)

const (
	CodeUnknownPlan        = "UNKNOWN_PLAN"
	CodeDuplicatePlan      = "DUPLICATE_PLAN"
	CodePlanNotOwned       = "PLAN_NOT_OWNED"
	CodeClaimNotFound      = "CLAIM_NOT_FOUND"
	CodeDuplicateClaim     = "DUPLICATE_CLAIM"
	CodeClaimAlreadyClosed = "CLAIM_ALREADY_CLOSED"
)

const (
	MessageUnknownPlan        = "Insurance plan id %d does not match any available plan"
	MessageDuplicatePlan      = "This plan with id: %d, has already been added to this client: %s"
	MessagePlanNotOwned       = "This plan with id: %d, has not been added to this client: %s"
	MessageClaimNotFound      = "No claim with id: %s exists in %s"
	MessageDuplicateClaim     = "A claim with id: %s already exists in %s"
	MessageClaimAlreadyClosed = "The claim with id: %s in %s is already closed"
)

var (
	ErrUnknownPlan        = apperr.Sentinel(CodeUnknownPlan)
	ErrDuplicatePlan      = apperr.Sentinel(CodeDuplicatePlan)
	ErrPlanNotOwned       = apperr.Sentinel(CodePlanNotOwned)
	ErrClaimNotFound      = apperr.Sentinel(CodeClaimNotFound)
	ErrDuplicateClaim     = apperr.Sentinel(CodeDuplicateClaim)
	ErrClaimAlreadyClosed = apperr.Sentinel(CodeClaimAlreadyClosed)
)

func unknownPlan(id int) error {
	return apperr.NewFormat(CodeUnknownPlan, fmt.Sprintf(MessageUnknownPlan, id), "")
}

func duplicatePlan(id int, owner string) error {
	return apperr.NewState(CodeDuplicatePlan, fmt.Sprintf(MessageDuplicatePlan, id, owner))
}

func planNotOwned(id int, owner string) error {
	return apperr.NewState(CodePlanNotOwned, fmt.Sprintf(MessagePlanNotOwned, id, owner))
}

func claimNotFound(claimID string, p *Plan) error {
	return apperr.NewState(CodeClaimNotFound, fmt.Sprintf(MessageClaimNotFound, claimID, p))
}

func duplicateClaim(claimID string, p *Plan) error {
	return apperr.NewState(CodeDuplicateClaim, fmt.Sprintf(MessageDuplicateClaim, claimID, p))
}

func claimAlreadyClosed(claimID string, p *Plan) error {
	return apperr.NewState(CodeClaimAlreadyClosed, fmt.Sprintf(MessageClaimAlreadyClosed, claimID, p))
}
