package application

import (
	"context"
	"errors"
	"io"

	"github.com/davarch/coolify-badge/internal/domain"
	"go.uber.org/zap"
)

type BadgeUseCase struct {
	log    *zap.Logger
	src    domain.DeploymentSource
	render domain.BadgeRenderer
}

func NewBadgeUseCase(l *zap.Logger, src domain.DeploymentSource, r domain.BadgeRenderer) *BadgeUseCase {
	return &BadgeUseCase{log: l, src: src, render: r}
}

// Status classifies the latest deployment of appID. It never fails:
// upstream errors become synthetic statuses.
func (uc *BadgeUseCase) Status(ctx context.Context, appID string) domain.DeploymentStatus {
	d, err := uc.src.LatestDeployment(ctx, appID)
	if err == nil {
		return d.Status
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.StatusUnauthorized
	case errors.Is(err, domain.ErrMalformed):
		uc.log.Error("json parsing error", zap.String("app", appID), zap.Error(err))
		return domain.StatusParseError
	default:
		uc.log.Debug("upstream offline", zap.String("app", appID), zap.Error(err))
		return domain.StatusOffline
	}
}

// WriteBadge classifies appID and renders the result to w.
func (uc *BadgeUseCase) WriteBadge(ctx context.Context, w io.Writer, appID string) (domain.DeploymentStatus, error) {
	s := uc.Status(ctx, appID)
	return s, uc.render.Render(w, s)
}
