package domain

import (
	"context"
	"io"
)

// DeploymentSource returns the latest deployment of an application, or
// one of ErrUnauthorized, ErrUnreachable, ErrMalformed (possibly wrapped).
type DeploymentSource interface {
	LatestDeployment(ctx context.Context, appID string) (Deployment, error)
}

type BadgeRenderer interface {
	Render(w io.Writer, s DeploymentStatus) error
}
