package domain

import "time"

// Criterion is a scoring dimension. MaxPoints bounds every score
// entered against it; Rounds tags the phases it applies to.
type Criterion struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	MaxPoints    int         `json:"maxPoints"`
	DisplayOrder int         `json:"displayOrder"`
	State        ActiveState `json:"state"`
	Rounds       []RoundType `json:"rounds"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// AppliesTo reports whether the criterion is tagged for the given phase.
// Untagged criteria predate round tagging and apply to every phase.
func (c Criterion) AppliesTo(round RoundType) bool {
	if len(c.Rounds) == 0 {
		return true
	}

	for _, r := range c.Rounds {
		if r == round {
			return true
		}
	}

	return false
}
