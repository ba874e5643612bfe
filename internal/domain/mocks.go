package domain

import (
	"context"
	"fmt"
	"io"
)

type MockSource struct {
	Deployment Deployment
	Err        error
	Called     int
	LastID     string
}

func (m *MockSource) LatestDeployment(ctx context.Context, appID string) (Deployment, error) {
	m.Called++
	m.LastID = appID
	if m.Err != nil {
		return Deployment{}, m.Err
	}
	d := m.Deployment
	d.ApplicationID = appID
	return d, nil
}

// SequenceSource hands out one result per call, repeating the last one.
type SequenceSource struct {
	Statuses []DeploymentStatus
	Called   int
}

func (m *SequenceSource) LatestDeployment(ctx context.Context, appID string) (Deployment, error) {
	i := m.Called
	if i >= len(m.Statuses) {
		i = len(m.Statuses) - 1
	}
	m.Called++
	return Deployment{ApplicationID: appID, Status: m.Statuses[i]}, nil
}

type MockRenderer struct {
	Rendered []DeploymentStatus
	Err      error
}

func (r *MockRenderer) Render(w io.Writer, s DeploymentStatus) error {
	if r.Err != nil {
		return r.Err
	}
	r.Rendered = append(r.Rendered, s)
	_, err := fmt.Fprintf(w, "<svg>%s</svg>", s)
	return err
}
