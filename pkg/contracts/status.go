package contracts

// Status is the deployment lifecycle state of a contract instance.
type Status string

// Lifecycle states. Completed and Failed are terminal.
const (
	StatusDraft     Status = "draft"
	StatusDeploying Status = "deploying"
	StatusDeployed  Status = "deployed"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// transitions is the full legal-move table of the lifecycle state machine.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusDeploying},
	StatusDeploying: {StatusDeployed, StatusFailed},
	StatusDeployed:  {StatusActive, StatusCompleted, StatusFailed},
	StatusActive:    {StatusPaused, StatusCompleted, StatusFailed},
	StatusPaused:    {StatusActive, StatusCompleted, StatusFailed},
	StatusCompleted: {},
	StatusFailed:    {},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) String() string {
	return string(s)
}
