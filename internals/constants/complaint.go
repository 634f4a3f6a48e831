package constants

// Complaint categories. An agency handles exactly one of these.
const (
	CategoryWater          = "Water"
	CategoryElectricity    = "Electricity"
	CategorySanitation     = "Sanitation"
	CategorySecurity       = "Security"
	CategoryTaxation       = "Taxation"
	CategoryHealth         = "Health"
	CategoryEducation      = "Education"
	CategoryTransportation = "Transportation"
	CategoryGovernmental   = "Governmental"
	CategoryOther          = "Other"
)

var ComplaintCategories = []string{
	CategoryWater,
	CategoryElectricity,
	CategorySanitation,
	CategorySecurity,
	CategoryTaxation,
	CategoryHealth,
	CategoryEducation,
	CategoryTransportation,
	CategoryGovernmental,
	CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range ComplaintCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Complaint status lifecycle.
const (
	StatusSubmitted  = "Submitted"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
)

var ComplaintStatuses = []string{
	StatusSubmitted,
	StatusInProgress,
	StatusResolved,
	StatusRejected,
}

func IsValidStatus(status string) bool {
	for _, s := range ComplaintStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Priority is a smallint: lower is more urgent.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

func PriorityLabel(p int) string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}
