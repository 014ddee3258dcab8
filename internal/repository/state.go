package repository

import "github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"

// The state column predates the tagged enum: 0 inactive, 1 active, 2 deleted.
func stateFromDAO(state int16) domain.ActiveState {
	switch state {
	case 2:
		return domain.StateDeleted
	case 1:
		return domain.StateActive
	default:
		return domain.StateInactive
	}
}

func stateToDAO(state domain.ActiveState) int16 {
	switch state {
	case domain.StateDeleted:
		return 2
	case domain.StateActive:
		return 1
	default:
		return 0
	}
}
