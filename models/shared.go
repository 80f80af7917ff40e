package models

// Plan is the service tier a patient signs up for.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanBasic, PlanPremium:
		return true
	}
	return false
}
