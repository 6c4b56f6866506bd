package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
	maxInclude      = 10
)

// Memory is an in-process CMS implementing both Reader and Manager. Entries
// are validated against their published content type on write, so a stored
// entry always satisfies the declarative constraints.
type Memory struct {
	mu           sync.RWMutex
	contentTypes map[string]*ContentType
	entries      map[string]*Entry
	assets       map[string]*Asset
	seq          map[string]int
	next         int
	now          func() time.Time
	last         time.Time
}

var (
	_ Reader  = (*Memory)(nil)
	_ Manager = (*Memory)(nil)
)

// NewMemory returns an empty store with no content types.
func NewMemory() *Memory {
	return &Memory{
		contentTypes: map[string]*ContentType{},
		entries:      map[string]*Entry{},
		assets:       map[string]*Asset{},
		seq:          map[string]int{},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// stamp returns a timestamp strictly after the previous one so creation
// order is always recoverable from sys.createdAt. Callers hold mu.
func (m *Memory) stamp() time.Time {
	t := m.now()
	if !t.After(m.last) {
		t = m.last.Add(time.Microsecond)
	}
	m.last = t
	return t
}

func (m *Memory) GetContentType(_ context.Context, id string) (*ContentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ct, ok := m.contentTypes[id]
	if !ok {
		return nil, notFound("content type", id)
	}
	cp := *ct
	return &cp, nil
}

func (m *Memory) CreateContentTypeWithID(_ context.Context, id string, model contentmodel.ContentType) (*ContentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contentTypes[id]; ok {
		return nil, &APIError{Status: http.StatusConflict, ID: "VersionMismatch", Message: fmt.Sprintf("content type %q already exists", id)}
	}
	now := m.stamp()
	ct := &ContentType{
		Sys:         Sys{ID: id, Type: "ContentType", Version: 1, CreatedAt: now, UpdatedAt: now},
		ContentType: model,
	}
	m.contentTypes[id] = ct
	cp := *ct
	return &cp, nil
}

func (m *Memory) PublishContentType(_ context.Context, ct *ContentType) (*ContentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.contentTypes[ct.Sys.ID]
	if !ok {
		return nil, notFound("content type", ct.Sys.ID)
	}
	if ct.Sys.Version != cur.Sys.Version {
		return nil, &APIError{Status: http.StatusConflict, ID: "VersionMismatch",
			Message: fmt.Sprintf("content type %q is at version %d, got %d", ct.Sys.ID, cur.Sys.Version, ct.Sys.Version)}
	}
	cur.Sys.PublishedVersion = cur.Sys.Version
	cur.Sys.Version++
	cur.Sys.UpdatedAt = m.stamp()
	cp := *cur
	return &cp, nil
}

func (m *Memory) ListContentTypes(_ context.Context) ([]ContentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ContentType, 0, len(m.contentTypes))
	for _, ct := range m.contentTypes {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Sys.CreatedAt.Equal(out[j].Sys.CreatedAt) {
			return out[i].Sys.CreatedAt.Before(out[j].Sys.CreatedAt)
		}
		return out[i].Sys.ID < out[j].Sys.ID
	})
	return out, nil
}

// PutAsset stores an asset, assigning an id when none is set.
func (m *Memory) PutAsset(a Asset) (*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putAsset(a)
}

func (m *Memory) putAsset(a Asset) (*Asset, error) {
	if a.Fields.File == nil {
		return nil, fmt.Errorf("asset %q: file is required", a.Sys.ID)
	}
	if a.Sys.ID == "" {
		a.Sys.ID = uuid.NewString()
	}
	now := m.stamp()
	a.Sys.Type = "Asset"
	if prev, ok := m.assets[a.Sys.ID]; ok {
		a.Sys.CreatedAt = prev.Sys.CreatedAt
		a.Sys.Version = prev.Sys.Version + 1
	} else {
		a.Sys.CreatedAt = now
		a.Sys.Version = 1
	}
	a.Sys.UpdatedAt = now
	m.assets[a.Sys.ID] = &a
	cp := a
	return &cp, nil
}

// PutEntry creates or replaces an entry of a published content type. An
// empty id is replaced by a generated one. Fields are rejected with an error
// wrapping contentmodel.ErrInvalidEntry when they violate the content type.
func (m *Memory) PutEntry(contentTypeID, id string, fields map[string]any) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putEntry(contentTypeID, id, fields)
}

func (m *Memory) putEntry(contentTypeID, id string, fields map[string]any) (*Entry, error) {
	ct, ok := m.contentTypes[contentTypeID]
	if !ok {
		return nil, notFound("content type", contentTypeID)
	}
	if ct.Sys.PublishedVersion == 0 {
		return nil, fmt.Errorf("content type %q is not published", contentTypeID)
	}
	normalized, err := normalize(fields)
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", id, err)
	}
	if err := contentmodel.ValidateFields(ct.ContentType, normalized, unlockedLinks{m}); err != nil {
		return nil, fmt.Errorf("entry %q (%s): %w", id, contentTypeID, err)
	}

	if id == "" {
		id = uuid.NewString()
	}
	now := m.stamp()
	e := &Entry{
		Sys: Sys{
			ID:          id,
			Type:        "Entry",
			ContentType: NewLink("ContentType", contentTypeID),
			CreatedAt:   now,
			UpdatedAt:   now,
			Version:     1,
		},
		Fields: normalized,
	}
	if prev, ok := m.entries[id]; ok {
		if prev.ContentTypeID() != contentTypeID {
			return nil, fmt.Errorf("entry %q is a %s, cannot replace it with a %s", id, prev.ContentTypeID(), contentTypeID)
		}
		e.Sys.CreatedAt = prev.Sys.CreatedAt
		e.Sys.Version = prev.Sys.Version + 1
	} else {
		m.next++
		m.seq[id] = m.next
	}
	m.entries[id] = e
	return copyEntry(e), nil
}

// normalize gives field values the shapes encoding/json produces, so stored
// entries look exactly like decoded API responses.
func normalize(fields map[string]any) (map[string]any, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EntryContentType implements contentmodel.LinkResolver.
func (m *Memory) EntryContentType(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return unlockedLinks{m}.EntryContentType(id)
}

// Asset implements contentmodel.LinkResolver.
func (m *Memory) Asset(id string) (contentmodel.AssetInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return unlockedLinks{m}.Asset(id)
}

// unlockedLinks resolves links for callers that already hold m.mu.
type unlockedLinks struct{ m *Memory }

func (u unlockedLinks) EntryContentType(id string) (string, bool) {
	e, ok := u.m.entries[id]
	if !ok {
		return "", false
	}
	return e.ContentTypeID(), true
}

func (u unlockedLinks) Asset(id string) (contentmodel.AssetInfo, bool) {
	a, ok := u.m.assets[id]
	if !ok {
		return contentmodel.AssetInfo{}, false
	}
	return a.Info(), true
}

// GetEntries implements Reader. Supported orders are sys.createdAt,
// sys.updatedAt, sys.id and fields.<id>, each optionally prefixed with "-"
// and comma separated.
func (m *Memory) GetEntries(ctx context.Context, q Query) (*EntryCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if q.ContentType != "" {
		if _, ok := m.contentTypes[q.ContentType]; !ok {
			return nil, &APIError{Status: http.StatusBadRequest, ID: "InvalidQuery", Message: fmt.Sprintf("unknown content type %q", q.ContentType)}
		}
	}

	var matched []*Entry
	for _, e := range m.entries {
		if q.ContentType == "" || e.ContentTypeID() == q.ContentType {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, m.orderBy(q.Order, matched))

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	coll := &EntryCollection{Total: len(matched), Skip: q.Skip, Limit: limit, Items: []Entry{}}
	page := matched
	if q.Skip >= len(page) {
		page = nil
	} else {
		page = page[q.Skip:]
	}
	if len(page) > limit {
		page = page[:limit]
	}
	for _, e := range page {
		coll.Items = append(coll.Items, *copyEntry(e))
	}

	include := q.Include
	if include == 0 {
		include = 1
	}
	if include > maxInclude {
		include = maxInclude
	}
	m.collectIncludes(coll, include)
	return coll, nil
}

func (m *Memory) orderBy(order string, es []*Entry) func(i, j int) bool {
	keys := strings.Split(order, ",")
	return func(i, j int) bool {
		for _, key := range keys {
			key = strings.TrimSpace(key)
			desc := strings.HasPrefix(key, "-")
			key = strings.TrimPrefix(key, "-")
			c := m.compare(es[i], es[j], key)
			if c == 0 {
				continue
			}
			if desc {
				return c > 0
			}
			return c < 0
		}
		return m.seq[es[i].Sys.ID] < m.seq[es[j].Sys.ID]
	}
}

func (m *Memory) compare(a, b *Entry, key string) int {
	switch key {
	case "sys.createdAt":
		if c := a.Sys.CreatedAt.Compare(b.Sys.CreatedAt); c != 0 {
			return c
		}
		return m.seq[a.Sys.ID] - m.seq[b.Sys.ID]
	case "sys.updatedAt":
		return a.Sys.UpdatedAt.Compare(b.Sys.UpdatedAt)
	case "sys.id":
		return strings.Compare(a.Sys.ID, b.Sys.ID)
	}
	if field, ok := strings.CutPrefix(key, "fields."); ok {
		return compareValues(a.Fields[field], b.Fields[field])
	}
	return 0
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case float64:
		if y, ok := b.(float64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	// missing values sort first
	switch {
	case a == nil && b != nil:
		return -1
	case a != nil && b == nil:
		return 1
	}
	return 0
}

// collectIncludes adds every entry and asset reachable from the page items
// within depth link hops.
func (m *Memory) collectIncludes(coll *EntryCollection, depth int) {
	seen := map[string]bool{}
	frontier := make([]*Entry, 0, len(coll.Items))
	for i := range coll.Items {
		seen[coll.Items[i].Sys.ID] = true
		frontier = append(frontier, &coll.Items[i])
	}
	seenAsset := map[string]bool{}
	for level := 0; level < depth && len(frontier) > 0; level++ {
		var next []*Entry
		for _, e := range frontier {
			walkLinks(e.Fields, func(id, linkType string) {
				switch linkType {
				case contentmodel.LinkEntry:
					target, ok := m.entries[id]
					if !ok || seen[id] {
						return
					}
					seen[id] = true
					cp := copyEntry(target)
					coll.Includes.Entry = append(coll.Includes.Entry, *cp)
					next = append(next, cp)
				case contentmodel.LinkAsset:
					a, ok := m.assets[id]
					if !ok || seenAsset[id] {
						return
					}
					seenAsset[id] = true
					coll.Includes.Asset = append(coll.Includes.Asset, *a)
				}
			})
		}
		frontier = next
	}
}

func walkLinks(v any, fn func(id, linkType string)) {
	if id, linkType, ok := contentmodel.LinkTarget(v); ok {
		fn(id, linkType)
		return
	}
	switch t := v.(type) {
	case map[string]any:
		for _, item := range t {
			walkLinks(item, fn)
		}
	case []any:
		for _, item := range t {
			walkLinks(item, fn)
		}
	}
}

func copyEntry(e *Entry) *Entry {
	cp := *e
	cp.Fields = cloneValue(e.Fields).(map[string]any)
	if e.Sys.ContentType != nil {
		link := *e.Sys.ContentType
		cp.Sys.ContentType = &link
	}
	return &cp
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
