package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/storage"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
)

// DefaultExportPath is where exports land when no path is given.
const DefaultExportPath = "contentful/models/content-models.json"

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportResult describes a written export.
type ExportResult struct {
	Path  string
	Count int
	Data  []byte

	ObjectKey    string
	PresignedURL string
}

// Export writes every content type of the space to path as indented JSON or
// YAML, creating parent directories as needed. An empty format is inferred
// from the file extension.
func Export(ctx context.Context, mgr cms.Manager, path, format string) (*ExportResult, error) {
	if path == "" {
		path = DefaultExportPath
	}
	format, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}

	types, err := mgr.ListContentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content types: %w", err)
	}
	if types == nil {
		types = []cms.ContentType{}
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(types)
	default:
		data, err = json.MarshalIndent(types, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("encode content types: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	logger.Infof("Content models exported to %s (%d content models)", path, len(types))
	return &ExportResult{Path: path, Count: len(types), Data: data}, nil
}

func resolveFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return FormatYAML, nil
		}
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

// Uploader stores export snapshots.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Upload copies a written export to object storage and records the object
// key and a presigned download URL on res.
func Upload(ctx context.Context, up Uploader, spaceID string, res *ExportResult, expires time.Duration) error {
	key := storage.SnapshotKey(spaceID, filepath.Base(res.Path), time.Now())
	contentType := "application/json"
	if strings.HasSuffix(res.Path, ".yaml") || strings.HasSuffix(res.Path, ".yml") {
		contentType = "application/yaml"
	}
	if err := up.Upload(ctx, key, res.Data, contentType); err != nil {
		return err
	}
	url, err := up.PresignedURL(ctx, key, expires)
	if err != nil {
		return fmt.Errorf("presign %s: %w", key, err)
	}
	res.ObjectKey, res.PresignedURL = key, url
	logger.Infof("Export uploaded to %s", key)
	return nil
}

// DebugEnv reports which CMS credentials are set, plus the first ten
// characters of the space id and management token.
func DebugEnv(w io.Writer, lookup func(string) (string, bool)) {
	status := func(name string) string {
		if v, ok := lookup(name); ok && v != "" {
			return "Set"
		}
		return "Missing"
	}
	prefix := func(name string) string {
		v, ok := lookup(name)
		if !ok || v == "" {
			return "(missing)"
		}
		r := []rune(v)
		if len(r) > 10 {
			r = r[:10]
		}
		return string(r) + "..."
	}

	fmt.Fprintln(w, "Environment Variables Debug:")
	for _, name := range []string{"CONTENTFUL_SPACE_ID", "CONTENTFUL_MANAGEMENT_TOKEN", "CONTENTFUL_ACCESS_TOKEN"} {
		fmt.Fprintf(w, "%s: %s\n", name, status(name))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actual values (first 10 chars):")
	fmt.Fprintf(w, "SPACE_ID: %s\n", prefix("CONTENTFUL_SPACE_ID"))
	fmt.Fprintf(w, "MANAGEMENT_TOKEN: %s\n", prefix("CONTENTFUL_MANAGEMENT_TOKEN"))
}
