package constants

// Promo code discount types
const (
	PromoTypePercentage  = "PERCENTAGE"
	PromoTypeFixedAmount = "FIXED_AMOUNT"
)

// Cohort statuses as stored by the platform backend
const (
	CohortStatusUpcoming   = "UPCOMING"
	CohortStatusOpen       = "OPEN"
	CohortStatusFull       = "FULL"
	CohortStatusInProgress = "IN_PROGRESS"
	CohortStatusCompleted  = "COMPLETED"
	CohortStatusCancelled  = "CANCELLED"
)

// Currency
const (
	CurrencySAR = "SAR"
)
