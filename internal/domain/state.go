package domain

// ActiveState models the lifecycle of judges and criteria. Deleted entities
// keep their rows so historical scores stay referentially intact.
type ActiveState string

const (
	StateInactive ActiveState = "inactive"
	StateActive   ActiveState = "active"
	StateDeleted  ActiveState = "deleted"
)

func (s ActiveState) Valid() bool {
	return s == StateInactive || s == StateActive || s == StateDeleted
}
