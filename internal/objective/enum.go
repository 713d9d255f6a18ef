package objective

// Status is the closed set of objective states. No "unknown" state is
// representable past DTO validation.
type Status string

const (
	StatusOnTrack   Status = "On Track"
	StatusAtRisk    Status = "At Risk"
	StatusDelayed   Status = "Delayed"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOnTrack, StatusAtRisk, StatusDelayed, StatusCompleted:
		return true
	}
	return false
}
