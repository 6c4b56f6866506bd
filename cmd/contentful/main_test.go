package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
	"github.com/landingpro/landing/backend/go-services/internal/runlog"
	"github.com/landingpro/landing/backend/go-services/internal/tokens"
)

// managementStub serves the content type endpoints of the management API
// from an in-memory CMS.
func managementStub(t *testing.T, mem *cms.Memory) *httptest.Server {
	t.Helper()
	const prefix = "/spaces/space1/environments/master/content_types"
	writeErr := func(w http.ResponseWriter, err error) {
		var apiErr *cms.APIError
		status := http.StatusInternalServerError
		if errors.As(err, &apiErr) {
			status = apiErr.Status
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"sys": map[string]string{"type": "Error", "id": "NotFound"}, "message": err.Error()})
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer mgmt-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"sys":{"type":"Error","id":"AccessTokenInvalid"},"message":"bad token"}`))
			return
		}
		ctx := r.Context()
		rest := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, prefix), "/")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			types, err := mem.ListContentTypes(ctx)
			if err != nil {
				writeErr(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"total": len(types), "items": types})
		case strings.HasSuffix(rest, "/published") && r.Method == http.MethodPut:
			id := strings.TrimSuffix(rest, "/published")
			ct, err := mem.GetContentType(ctx, id)
			if err != nil {
				writeErr(w, err)
				return
			}
			if v, _ := strconv.Atoi(r.Header.Get("X-Contentful-Version")); v != ct.Sys.Version {
				w.WriteHeader(http.StatusConflict)
				return
			}
			out, err := mem.PublishContentType(ctx, ct)
			if err != nil {
				writeErr(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(out)
		case r.Method == http.MethodGet:
			ct, err := mem.GetContentType(ctx, rest)
			if err != nil {
				writeErr(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(ct)
		case r.Method == http.MethodPut:
			var model contentmodel.ContentType
			if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			ct, err := mem.CreateContentTypeWithID(ctx, rest, model)
			if err != nil {
				writeErr(w, err)
				return
			}
			_ = json.NewEncoder(w).Encode(ct)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setEnv(t *testing.T) {
	t.Setenv("CONTENTFUL_SPACE_ID", "space1")
	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "mgmt-token")
	t.Setenv("CONTENTFUL_ENVIRONMENT", "master")
	t.Setenv("CMS_BACKEND", "contentful")
	t.Setenv("MONGODB_URI", "")
}

func TestSetupIsIdempotent(t *testing.T) {
	setEnv(t)
	mem := cms.NewMemory()
	srv := managementStub(t, mem)

	out, err := execute(t, "setup", "--api-host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "14 created, 0 skipped")

	types, err := mem.ListContentTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 14)
	for _, ct := range types {
		assert.True(t, ct.Published(), ct.Sys.ID)
	}

	out, err = execute(t, "setup", "--api-host", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "0 created, 14 skipped")
}

func TestSetupRequiresCredentials(t *testing.T) {
	setEnv(t)
	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "")
	_, err := execute(t, "setup")
	require.EqualError(t, err, "Missing environment variable: CONTENTFUL_MANAGEMENT_TOKEN")
}

func TestCredentialsCheckTokenFirst(t *testing.T) {
	setEnv(t)
	t.Setenv("CONTENTFUL_SPACE_ID", "")
	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "")
	for _, name := range []string{"setup", "export"} {
		_, err := execute(t, name)
		require.EqualError(t, err, "Missing environment variable: CONTENTFUL_MANAGEMENT_TOKEN", name)
	}

	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "mgmt-token")
	_, err := execute(t, "setup")
	require.EqualError(t, err, "Missing environment variable: CONTENTFUL_SPACE_ID")
}

func TestSetupFailsOnBadToken(t *testing.T) {
	setEnv(t)
	t.Setenv("CONTENTFUL_MANAGEMENT_TOKEN", "wrong")
	srv := managementStub(t, cms.NewMemory())
	_, err := execute(t, "setup", "--api-host", srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, cms.ErrUnauthorized)
}

func TestExport(t *testing.T) {
	setEnv(t)
	mem := cms.NewMemory()
	srv := managementStub(t, mem)
	_, err := execute(t, "setup", "--api-host", srv.URL)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "models", "content-models.json")
	out, err := execute(t, "export", "--api-host", srv.URL, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Content models exported to "+path)
	assert.Contains(t, out, "Exported 14 content models")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var models []map[string]any
	require.NoError(t, json.Unmarshal(data, &models))
	assert.Len(t, models, 14)
}

func TestDebugEnv(t *testing.T) {
	setEnv(t)
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "")
	out, err := execute(t, "debug-env")
	require.NoError(t, err)
	assert.Contains(t, out, "CONTENTFUL_SPACE_ID: Set")
	assert.Contains(t, out, "CONTENTFUL_ACCESS_TOKEN: Missing")
	assert.Contains(t, out, "MANAGEMENT_TOKEN: mgmt-token...")
}

func TestPreviewToken(t *testing.T) {
	setEnv(t)
	const secret = "cli-preview-secret-xxxxxxxxxxxxxxxx"
	t.Setenv("PREVIEW_SECRET", secret)

	out, err := execute(t, "preview-token", "--subject", "qa", "--ttl", "2m")
	require.NoError(t, err)
	claims, err := tokens.ParsePreviewToken(secret, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "qa", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(2*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	t.Setenv("PREVIEW_SECRET", "")
	_, err = execute(t, "preview-token")
	require.ErrorIs(t, err, tokens.ErrNoSecret)
}

func TestRevokeToken(t *testing.T) {
	setEnv(t)
	const secret = "cli-preview-secret-xxxxxxxxxxxxxxxx"
	t.Setenv("PREVIEW_SECRET", secret)

	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	host, port, _ := strings.Cut(m.Addr(), ":")
	t.Setenv("REDIS_HOST", host)
	t.Setenv("REDIS_PORT", port)

	tok, err := tokens.GeneratePreviewToken(secret, "qa", time.Hour)
	require.NoError(t, err)
	claims, err := tokens.ParsePreviewToken(secret, tok)
	require.NoError(t, err)

	out, err := execute(t, "revoke-token", tok)
	require.NoError(t, err)
	assert.Contains(t, out, "Revoked token "+claims.ID)
	assert.Len(t, m.Keys(), 1)

	t.Setenv("REDIS_HOST", "")
	_, err = execute(t, "revoke-token", tok)
	require.EqualError(t, err, "Missing environment variable: REDIS_HOST")
}

func TestRunsRequiresMongo(t *testing.T) {
	setEnv(t)
	_, err := execute(t, "runs", "--limit", "5")
	require.EqualError(t, err, "Missing environment variable: MONGODB_URI")
}

func TestRunsTable(t *testing.T) {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	runs := []runlog.Run{
		{
			RunID: "run-setup", Command: "setup", Status: runlog.StatusOK,
			Created: []string{"navigation", "heroSection"}, Skipped: []string{"ctaButton"},
			StartedAt: started, FinishedAt: started.Add(1500 * time.Millisecond),
		},
		{
			RunID: "run-export", Command: "export", Status: runlog.StatusOK,
			OutputPath: "out/models.json", ObjectKey: "exports/space1/models.json",
			StartedAt: started,
		},
		{RunID: "run-failed", Command: "setup", Status: runlog.StatusFailed, Error: "unauthorized", StartedAt: started},
	}
	out := runsTable(runs)
	for _, want := range []string{"RUN", "run-setup", "2 created, 1 skipped", "1.5s", "2026-10-18T09:00:00Z",
		"out/models.json s3:exports/space1/models.json", "run-failed", "unauthorized"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, "unauthorized", runDetail(runs[2]))
}
