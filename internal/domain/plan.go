package domain

type Plan struct {
	ID       string
	Name     string
	Price    float64
	Duration PlanDuration
}

type PlanDuration string

const (
	DurationMonthly PlanDuration = "monthly"
	DurationAnnual  PlanDuration = "annual"
)
