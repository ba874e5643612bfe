package domain

type DeploymentStatus string

const (
	StatusFinished   DeploymentStatus = "finished"
	StatusFailed     DeploymentStatus = "failed"
	StatusInProgress DeploymentStatus = "in_progress"
	StatusQueued     DeploymentStatus = "queued"
	StatusNoHistory  DeploymentStatus = "no_history"

	// Synthetic, never reported by Coolify.
	StatusUnauthorized DeploymentStatus = "unauthorized"
	StatusOffline      DeploymentStatus = "offline"
	StatusParseError   DeploymentStatus = "parse_error"
)

const (
	ColorGreen     = "#3fb950"
	ColorRed       = "#f85149"
	ColorBlue      = "#2188ff"
	ColorGray      = "#6e7681"
	ColorLightGray = "#d1d5da"
	ColorAmber     = "#cea61b"
)

// Color returns the badge fill for s. Statuses outside the known
// vocabulary, synthetic ones included, get amber.
func (s DeploymentStatus) Color() string {
	switch s {
	case StatusFinished:
		return ColorGreen
	case StatusFailed:
		return ColorRed
	case StatusInProgress:
		return ColorBlue
	case StatusQueued:
		return ColorGray
	case StatusNoHistory:
		return ColorLightGray
	default:
		return ColorAmber
	}
}

// Known reports whether s is part of the vocabulary Coolify documents.
func (s DeploymentStatus) Known() bool {
	switch s {
	case StatusFinished, StatusFailed, StatusInProgress, StatusQueued, StatusNoHistory:
		return true
	default:
		return false
	}
}

func (s DeploymentStatus) String() string { return string(s) }

type Deployment struct {
	ApplicationID string
	Status        DeploymentStatus
}
