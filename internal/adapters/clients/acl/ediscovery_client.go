package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/adapters/clients/acl/ediscovery"
	domainediscovery "github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain/ediscovery"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/ports"
)

// Compile-time interface check.
var _ ports.ContainerLookup = (*EdiscoveryClient)(nil)

// EdiscoveryClient is the outbound adapter for the eDiscovery service. It
// implements [ports.ContainerLookup].
type EdiscoveryClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewEdiscoveryClient creates an EdiscoveryClient that sends requests through
// the given [httpclient.Client].
func NewEdiscoveryClient(client *httpclient.Client, logger *slog.Logger) *EdiscoveryClient {
	return &EdiscoveryClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetContentContainer fetches a report container from
// GET /api/v1/reports/{reportId}/contents/container/{containerId}.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *EdiscoveryClient) GetContentContainer(ctx context.Context, reportID, containerID string) (*domainediscovery.ContentContainer, error) {
	path := "/api/v1/reports/" + url.PathEscape(reportID) + "/contents/container/" + url.PathEscape(containerID)

	var dto ediscovery.ContainerDTO
	if err := c.req.Send(ctx, call{method: http.MethodGet, path: path, want: http.StatusOK, out: &dto}); err != nil {
		return nil, err
	}
	return ediscovery.ToDomainContainer(&dto), nil
}
