package commands

import (
	"fmt"

	"clientbook/internal/index"
	"clientbook/internal/insurance"
)

const (
	AddInsuranceWord = "addInsurance"
	AddInsuranceUsage = AddInsuranceWord + ": Adds an insurance plan to the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID\n" +
		"Example: " + AddInsuranceWord + " 1 i/0"
	MessageAddInsuranceSuccess = "Insurance plan: %s added to client: %s"

	DeleteInsuranceWord = "deleteInsurance"
	DeleteInsuranceUsage = DeleteInsuranceWord + ": Deletes an insurance plan from the client identified by the index number used in the displayed client list.\n" +
		"Parameters: INDEX (must be a positive integer) i/INSURANCE_ID\n" +
		"Example: " + DeleteInsuranceWord + " 1 i/0"
	MessageDeleteInsuranceSuccess = "Insurance plan: %s deleted from client: %s"
)

type AddInsurance struct {
	Index       index.Index
	InsuranceID int
}

func NewAddInsurance(idx index.Index, insuranceID int) *AddInsurance {
	return &AddInsurance{Index: idx, InsuranceID: insuranceID}
}

func (c *AddInsurance) Word() string { return AddInsuranceWord }

func (c *AddInsurance) Execute(m Model) (Result, error) {
	client, err := clientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	plan, err := insurance.NewPlan(c.InsuranceID)
	if err != nil {
		return Result{}, err
	}
	plans := client.Plans()
	if err := plans.CheckNotOwned(plan); err != nil {
		return Result{}, err
	}
	plans.AddPlan(plan)
	return Result{Feedback: fmt.Sprintf(MessageAddInsuranceSuccess, plan, client.Name())}, nil
}

func (c *AddInsurance) Equal(other any) bool {
	o, ok := other.(*AddInsurance)
	return ok && o != nil && *c == *o
}

// DeleteInsurance removes one plan, with all of its claims, from a client.
type DeleteInsurance struct {
	Index       index.Index
	InsuranceID int
}

func NewDeleteInsurance(idx index.Index, insuranceID int) *DeleteInsurance {
	return &DeleteInsurance{Index: idx, InsuranceID: insuranceID}
}

func (c *DeleteInsurance) Word() string { return DeleteInsuranceWord }

func (c *DeleteInsurance) Execute(m Model) (Result, error) {
	client, err := clientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	plan, err := insurance.NewPlan(c.InsuranceID)
	if err != nil {
		return Result{}, err
	}
	plans := client.Plans()
	if err := plans.CheckOwned(plan); err != nil {
		return Result{}, err
	}
	plans.DeletePlan(plan)
	return Result{Feedback: fmt.Sprintf(MessageDeleteInsuranceSuccess, plan, client.Name())}, nil
}

func (c *DeleteInsurance) Equal(other any) bool {
	o, ok := other.(*DeleteInsurance)
	return ok && o != nil && *c == *o
}
