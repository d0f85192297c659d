package model

// StatusKey is the language-independent identifier of a mission status
type StatusKey string

const (
	StatusStudent       StatusKey = "student"
	StatusVolunteer     StatusKey = "volunteer"
	StatusIntern        StatusKey = "intern"
	StatusShortContract StatusKey = "short-contract"
	StatusSalaried      StatusKey = "salaried"
	StatusDefault       StatusKey = "default" // Unrecognized label
)

// CanonicalStatuses lists the canonical keys in declaration order.
// Status filters and legends are laid out in this order for every language.
func CanonicalStatuses() []StatusKey {
	return []StatusKey{
		StatusStudent,
		StatusVolunteer,
		StatusIntern,
		StatusShortContract,
		StatusSalaried,
	}
}

// IsCanonical reports whether k is one of the five canonical keys
func (k StatusKey) IsCanonical() bool {
	switch k {
	case StatusStudent, StatusVolunteer, StatusIntern, StatusShortContract, StatusSalaried:
		return true
	default:
		return false
	}
}

// StatusLabel pairs a raw display label with its canonical key
type StatusLabel struct {
	Raw string    `json:"raw" yaml:"raw"`
	Key StatusKey `json:"key" yaml:"key"`
}
