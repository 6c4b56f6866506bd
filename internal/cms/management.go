package cms

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
)

// ManagementConfig configures the management API client.
type ManagementConfig struct {
	SpaceID     string
	Token       string
	Environment string
	Host        string
}

// ManagementClient creates, publishes and lists content types.
type ManagementClient struct {
	api *apiClient
}

// NewManagementClient requires a space id and a management token.
func NewManagementClient(cfg ManagementConfig) (*ManagementClient, error) {
	if cfg.SpaceID == "" || cfg.Token == "" {
		return nil, errors.New("management client: space id and management token are required")
	}
	host := cfg.Host
	if host == "" {
		host = ManagementHost
	}
	return &ManagementClient{api: newAPIClient("management", host, cfg.SpaceID, cfg.Environment, cfg.Token)}, nil
}

func mgmtHeader(version int) http.Header {
	h := http.Header{}
	h.Set("Content-Type", managementMediaType)
	if version > 0 {
		h.Set("X-Contentful-Version", strconv.Itoa(version))
	}
	return h
}

// GetContentType fetches a content type. A missing type yields an error
// matching ErrNotFound.
func (c *ManagementClient) GetContentType(ctx context.Context, id string) (*ContentType, error) {
	var ct ContentType
	if err := c.api.do(ctx, http.MethodGet, "/content_types/"+url.PathEscape(id), nil, nil, nil, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// CreateContentTypeWithID creates a draft content type under a fixed id.
func (c *ManagementClient) CreateContentTypeWithID(ctx context.Context, id string, model contentmodel.ContentType) (*ContentType, error) {
	var ct ContentType
	if err := c.api.do(ctx, http.MethodPut, "/content_types/"+url.PathEscape(id), nil, model, mgmtHeader(0), &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}

// PublishContentType publishes the version of ct held by the caller.
func (c *ManagementClient) PublishContentType(ctx context.Context, ct *ContentType) (*ContentType, error) {
	var out ContentType
	path := "/content_types/" + url.PathEscape(ct.Sys.ID) + "/published"
	if err := c.api.do(ctx, http.MethodPut, path, nil, nil, mgmtHeader(ct.Sys.Version), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContentTypes returns every content type in the environment.
func (c *ManagementClient) ListContentTypes(ctx context.Context) ([]ContentType, error) {
	var page struct {
		Total int           `json:"total"`
		Items []ContentType `json:"items"`
	}
	q := url.Values{"limit": {"1000"}}
	if err := c.api.do(ctx, http.MethodGet, "/content_types", q, nil, nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}
