package domain

// Settings is the process-wide competition state. It is loaded from the
// settings key/value table before every score mutation and result read,
// never cached across requests.
type Settings struct {
	ResultsPublished    bool      `json:"resultsPublished"`
	FinalsEnabled       bool      `json:"finalsEnabled"`
	QualificationLocked bool      `json:"qualificationLocked"`
	CurrentRound        RoundType `json:"currentRound"`
}

// RoundLocked reports whether score writes for the given phase are rejected.
// Qualification locks when finals begin; finals writes are gated only by
// finalsEnabled and have no separate lock flag.
func (s Settings) RoundLocked(round RoundType) bool {
	switch round {
	case RoundQualification:
		return s.QualificationLocked
	case RoundFinals:
		return !s.FinalsEnabled
	default:
		return true
	}
}
