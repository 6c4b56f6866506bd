package cms

import (
	"context"
	"net/http"

	"github.com/landingpro/landing/backend/go-services/pkg/logger"
)

// DeliveryConfig configures a read client. Host selects the published
// (DeliveryHost) or draft (PreviewHost) content.
type DeliveryConfig struct {
	SpaceID     string
	AccessToken string
	Environment string
	Host        string
}

// DeliveryClient reads entries from the delivery or preview API. A nil
// *DeliveryClient is valid and reports ErrNotConfigured.
type DeliveryClient struct {
	api *apiClient
}

// NewDeliveryClient returns nil (with a warning) when the space id or token
// is missing, so callers can fall back to placeholder content.
func NewDeliveryClient(cfg DeliveryConfig) *DeliveryClient {
	if cfg.SpaceID == "" || cfg.AccessToken == "" {
		logger.Warnf("Contentful configuration missing for %s, content will fall back to placeholders", hostName(cfg.Host))
		return nil
	}
	name := "delivery"
	if cfg.Host == PreviewHost {
		name = "preview"
	}
	return &DeliveryClient{api: newAPIClient(name, cfg.Host, cfg.SpaceID, cfg.Environment, cfg.AccessToken)}
}

func hostName(host string) string {
	if host == "" {
		return DeliveryHost
	}
	return host
}

// GetEntries returns one page of entries matching q, with linked entries and
// assets in Includes.
func (c *DeliveryClient) GetEntries(ctx context.Context, q Query) (*EntryCollection, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	var coll EntryCollection
	if err := c.api.do(ctx, http.MethodGet, "/entries", q.Values(), nil, nil, &coll); err != nil {
		return nil, err
	}
	return &coll, nil
}
