package coolify_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/davarch/coolify-badge/internal/domain"
)

const (
	deploymentsPath = "/api/v1/deployments/applications/"
	maxBodySize     = 4 << 20
)

type Client struct {
	baseUrl string
	token   string
	hc      *http.Client
}

// New builds a client against a Coolify instance. baseUrl is used as
// given; a trailing slash is not stripped.
func New(baseUrl string, token string, timeout time.Duration) *Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseUrl: baseUrl,
		token:   token,
		hc:      &http.Client{Transport: tr, Timeout: timeout},
	}
}

type deploymentDTO struct {
	Status *string `json:"status"`
}

type deploymentsDTO struct {
	Deployments *[]deploymentDTO `json:"deployments"`
}

func (c *Client) URL(appID string) string {
	return c.baseUrl + deploymentsPath + appID
}

func (c *Client) LatestDeployment(ctx context.Context, appID string) (domain.Deployment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(appID), nil)
	if err != nil {
		// An unparsable URL never reaches the network.
		return domain.Deployment{}, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.Deployment{}, fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.Deployment{}, domain.ErrUnauthorized
	}

	// A body that stalls or drops mid-read is a transport failure, not a
	// malformed answer.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.Deployment{}, fmt.Errorf("%w: %s: %v", domain.ErrUnreachable, resp.Status, err)
	}

	var body deploymentsDTO
	if err := json.Unmarshal(raw, &body); err != nil {
		return domain.Deployment{}, fmt.Errorf("%w: %s: %v", domain.ErrMalformed, resp.Status, err)
	}

	if body.Deployments == nil {
		return domain.Deployment{}, fmt.Errorf("%w: %s: missing field `deployments`", domain.ErrMalformed, resp.Status)
	}

	list := *body.Deployments
	for i, d := range list {
		if d.Status == nil {
			return domain.Deployment{}, fmt.Errorf("%w: deployments[%d]: missing field `status`", domain.ErrMalformed, i)
		}
	}

	if len(list) == 0 {
		return domain.Deployment{ApplicationID: appID, Status: domain.StatusNoHistory}, nil
	}

	return domain.Deployment{
		ApplicationID: appID,
		Status:        domain.DeploymentStatus(*list[0].Status),
	}, nil
}
