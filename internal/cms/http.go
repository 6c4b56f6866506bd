package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
)

// API hosts.
const (
	DeliveryHost   = "https://cdn.contentful.com"
	PreviewHost    = "https://preview.contentful.com"
	ManagementHost = "https://api.contentful.com"

	DefaultEnvironment = "master"

	managementMediaType = "application/vnd.contentful.management.v1+json"
)

func newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{
		Timeout:   15 * time.Second,
		Transport: transport,
	}
}

// apiClient is the shared request plumbing behind the delivery and
// management clients.
type apiClient struct {
	name    string
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(name, host, space, env, token string) *apiClient {
	if host == "" {
		host = DeliveryHost
	}
	if env == "" {
		env = DefaultEnvironment
	}
	base := fmt.Sprintf("%s/spaces/%s/environments/%s", strings.TrimSuffix(host, "/"), url.PathEscape(space), url.PathEscape(env))
	return &apiClient{name: name, baseURL: base, token: token, http: newHTTPClient()}
}

// do sends a request and decodes a 2xx JSON body into out. Non-2xx responses
// become *APIError.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body any, header http.Header, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.CMSRequestDuration.WithLabelValues(c.name, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.CMSRequestDuration.WithLabelValues(c.name, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	}
	if json.Unmarshal(data, &body) == nil {
		apiErr.ID = body.Sys.ID
		apiErr.Message = body.Message
		apiErr.RequestID = body.RequestID
	}
	return apiErr
}
