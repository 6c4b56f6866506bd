package cms

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
)

//go:embed fixtures/demo.yaml
var demoFixtures []byte

// Fixtures is a YAML document of assets and entries for the memory backend.
// Inside entry fields, {$entry: id} and {$asset: id} are shorthand for link
// objects.
type Fixtures struct {
	Assets  []FixtureAsset `yaml:"assets"`
	Entries []FixtureEntry `yaml:"entries"`
}

type FixtureAsset struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	FileName    string `yaml:"fileName"`
	ContentType string `yaml:"contentType"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Size        int    `yaml:"size"`
}

type FixtureEntry struct {
	ID          string         `yaml:"id"`
	ContentType string         `yaml:"contentType"`
	Fields      map[string]any `yaml:"fields"`
}

// ParseFixtures decodes a fixture document. Unknown keys are rejected.
func ParseFixtures(data []byte) (*Fixtures, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

// LoadFixturesFile reads and parses a fixture file.
func LoadFixturesFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// DemoFixtures returns the built-in landing page content.
func DemoFixtures() (*Fixtures, error) {
	return ParseFixtures(demoFixtures)
}

func (a FixtureAsset) asset() Asset {
	file := &AssetFile{URL: a.URL, FileName: a.FileName, ContentType: a.ContentType, Details: AssetDetails{Size: a.Size}}
	if a.Width > 0 || a.Height > 0 {
		file.Details.Image = &ImageSize{Width: a.Width, Height: a.Height}
	}
	return Asset{Sys: Sys{ID: a.ID}, Fields: AssetFields{Title: a.Title, Description: a.Description, File: file}}
}

// expandLinks rewrites {$entry: id} / {$asset: id} into link objects.
func expandLinks(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 1 {
			if id, ok := t["$entry"].(string); ok {
				return linkValue(contentmodel.LinkEntry, id)
			}
			if id, ok := t["$asset"].(string); ok {
				return linkValue(contentmodel.LinkAsset, id)
			}
		}
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = expandLinks(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = expandLinks(item)
		}
		return out
	}
	return v
}

func linkValue(linkType, id string) map[string]any {
	return map[string]any{"sys": map[string]any{"type": "Link", "linkType": linkType, "id": id}}
}

// Load replaces all assets and entries with fx. Entries must be listed after
// the entries they link to. On error the previous content is kept.
func (m *Memory) Load(fx *Fixtures) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prevEntries, prevAssets, prevSeq, prevNext := m.entries, m.assets, m.seq, m.next
	m.entries, m.assets, m.seq, m.next = map[string]*Entry{}, map[string]*Asset{}, map[string]int{}, 0

	err := func() error {
		for _, a := range fx.Assets {
			if _, err := m.putAsset(a.asset()); err != nil {
				return err
			}
		}
		for _, e := range fx.Entries {
			fields, _ := expandLinks(e.Fields).(map[string]any)
			if _, err := m.putEntry(e.ContentType, e.ID, fields); err != nil {
				return err
			}
		}
		return nil
	}()
	if err != nil {
		m.entries, m.assets, m.seq, m.next = prevEntries, prevAssets, prevSeq, prevNext
		return fmt.Errorf("load fixtures: %w", err)
	}
	return nil
}

// WatchFixtures reloads path into m whenever it changes, until ctx is done.
// Reload failures are logged and the previous content stays live.
func (m *Memory) WatchFixtures(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fixture watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory: editors often replace files by rename
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	const debounce = 500 * time.Millisecond
	var timer *time.Timer
	reload := func() {
		fx, err := LoadFixturesFile(abs)
		if err == nil {
			err = m.Load(fx)
		}
		if err != nil {
			logger.Errorf("fixture reload failed: %v", err)
			return
		}
		logger.Infof("fixtures reloaded from %s (%d entries)", abs, len(fx.Entries))
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, reload)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("fixture watcher: %v", err)
		}
	}
}
