package model

// RecommendationCriteria are the answers collected by the battery
// selector quiz. Empty fields leave the corresponding dimension
// unconstrained.
type RecommendationCriteria struct {
	// Vehicle slug: golf-cart, lsv, nev or msv.
	VehicleType string
	// Voltage system slug: 36v, 48v, 72v or not-sure.
	VoltageSystem string
	// Usage intensity: light, moderate or heavy.
	Usage string
	// Budget preference: economy, balanced or professional.
	Budget string
}

const (
	VoltageSystemNotSure = "not-sure"

	UsageHeavy = "heavy"

	BudgetEconomy      = "economy"
	BudgetProfessional = "professional"
)
