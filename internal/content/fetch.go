// Package content fetches landing page entries from the CMS and decodes them
// into typed section entries. Fetch failures never escape as errors; they are
// folded into Result so callers can render a fallback.
package content

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	includeDepth = 3
	defaultLimit = 10
	newestFirst  = "-sys.createdAt"
)

// Result is the envelope returned by every fetch and served as-is by the
// JSON API.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
	Total   int    `json:"total,omitempty"`
}

// Options tune a fetch. Limit <= 0 means the default of 10.
type Options struct {
	Preview bool
	Limit   int
	Order   string
}

// Fetcher reads entries through a delivery client and, for preview requests,
// a preview client. Either may be nil when not configured.
type Fetcher struct {
	client  cms.Reader
	preview cms.Reader
}

func NewFetcher(client, preview cms.Reader) *Fetcher {
	return &Fetcher{client: client, preview: preview}
}

// Configured reports whether a delivery client is available.
func (f *Fetcher) Configured() bool {
	return f != nil && f.client != nil && !isNilDelivery(f.client)
}

func (f *Fetcher) reader(preview bool) cms.Reader {
	if f == nil {
		return nil
	}
	if preview {
		return f.preview
	}
	return f.client
}

// isNilDelivery catches a typed nil *cms.DeliveryClient stored in the
// interface, which is what NewDeliveryClient returns without credentials.
func isNilDelivery(r cms.Reader) bool {
	dc, ok := r.(*cms.DeliveryClient)
	return ok && dc == nil
}

// FetchEntriesByType lists entries of one content type with linked entries
// and assets resolved up to three levels deep.
func (f *Fetcher) FetchEntriesByType(ctx context.Context, contentType string, opts Options) Result[[]map[string]any] {
	empty := []map[string]any{}
	r := f.reader(opts.Preview)
	if r == nil || isNilDelivery(r) {
		metrics.CMSRequests.WithLabelValues(contentType, "unavailable").Inc()
		return Result[[]map[string]any]{Data: empty, Error: cms.ErrNotConfigured.Error()}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	coll, err := r.GetEntries(ctx, cms.Query{
		ContentType: contentType,
		Include:     includeDepth,
		Limit:       limit,
		Order:       opts.Order,
	})
	if err != nil {
		if errors.Is(err, cms.ErrNotConfigured) {
			metrics.CMSRequests.WithLabelValues(contentType, "unavailable").Inc()
			return Result[[]map[string]any]{Data: empty, Error: err.Error()}
		}
		metrics.CMSRequests.WithLabelValues(contentType, "error").Inc()
		logger.Errorf("Error fetching %s: %v", contentType, err)
		return Result[[]map[string]any]{Data: empty, Error: err.Error()}
	}

	metrics.CMSRequests.WithLabelValues(contentType, "ok").Inc()
	items := cms.ResolveLinks(coll, includeDepth)
	if items == nil {
		items = empty
	}
	return Result[[]map[string]any]{Success: true, Data: items, Total: coll.Total}
}

// fetchSingle returns the newest entry of a content type decoded into T.
// Data is nil when the fetch failed or the type has no entries.
func fetchSingle[T any](ctx context.Context, f *Fetcher, contentType string, opts Options, normalize func(*T)) Result[*T] {
	opts.Limit = 1
	opts.Order = newestFirst
	res := f.FetchEntriesByType(ctx, contentType, opts)
	out := Result[*T]{Success: res.Success, Error: res.Error, Total: res.Total}
	if !res.Success || len(res.Data) == 0 {
		return out
	}

	var entry T
	if err := decode(res.Data[0], &entry); err != nil {
		logger.Errorf("Error decoding %s: %v", contentType, err)
		return Result[*T]{Error: err.Error(), Total: res.Total}
	}
	if normalize != nil {
		normalize(&entry)
	}
	out.Data = &entry
	return out
}

func decode(raw map[string]any, out any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}
	return nil
}

func (f *Fetcher) FetchNavigation(ctx context.Context, opts Options) Result[*NavigationEntry] {
	return fetchSingle(ctx, f, contentmodel.NavigationID, opts, normalizeNavigation)
}

func (f *Fetcher) FetchHeroSection(ctx context.Context, opts Options) Result[*HeroSectionEntry] {
	return fetchSingle[HeroSectionEntry](ctx, f, contentmodel.HeroSectionID, opts, nil)
}

func (f *Fetcher) FetchCarouselSection(ctx context.Context, opts Options) Result[*CarouselSectionEntry] {
	return fetchSingle(ctx, f, contentmodel.CarouselSectionID, opts, normalizeCarousel)
}

func (f *Fetcher) FetchServicesSection(ctx context.Context, opts Options) Result[*ServicesSectionEntry] {
	return fetchSingle(ctx, f, contentmodel.ServicesSectionID, opts, normalizeServices)
}

func (f *Fetcher) FetchFooterSection(ctx context.Context, opts Options) Result[*FooterSectionEntry] {
	return fetchSingle(ctx, f, contentmodel.FooterSectionID, opts, normalizeFooter)
}

// HomeSections holds the results for every section of the landing page.
type HomeSections struct {
	Navigation Result[*NavigationEntry]
	Hero       Result[*HeroSectionEntry]
	Carousel   Result[*CarouselSectionEntry]
	Services   Result[*ServicesSectionEntry]
	Footer     Result[*FooterSectionEntry]
}

// FetchHomeSections fetches all sections concurrently and waits for every
// one of them. A failed section does not cancel the others.
func (f *Fetcher) FetchHomeSections(ctx context.Context, opts Options) HomeSections {
	var (
		out HomeSections
		g   errgroup.Group
	)
	g.Go(func() error { out.Navigation = f.FetchNavigation(ctx, opts); return nil })
	g.Go(func() error { out.Hero = f.FetchHeroSection(ctx, opts); return nil })
	g.Go(func() error { out.Carousel = f.FetchCarouselSection(ctx, opts); return nil })
	g.Go(func() error { out.Services = f.FetchServicesSection(ctx, opts); return nil })
	g.Go(func() error { out.Footer = f.FetchFooterSection(ctx, opts); return nil })
	_ = g.Wait()
	return out
}

// SortByOrder stable-sorts items ascending by key. Items whose order field
// is missing decode to 0 and sort first.
func SortByOrder[T any](items []T, key func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

func normalizeNavigation(n *NavigationEntry) {
	SortByOrder(n.Fields.MenuItems, func(m MenuItemEntry) int { return m.Fields.Order })
	for i := range n.Fields.MenuItems {
		SortByOrder(n.Fields.MenuItems[i].Fields.DropdownItems, func(d DropdownItemEntry) int { return d.Fields.Order })
	}
}

func normalizeCarousel(c *CarouselSectionEntry) {
	SortByOrder(c.Fields.Slides, func(s CarouselSlideEntry) int { return s.Fields.Order })
}

func normalizeServices(s *ServicesSectionEntry) {
	SortByOrder(s.Fields.Services, func(i ServiceItemEntry) int { return i.Fields.Order })
}

func normalizeFooter(f *FooterSectionEntry) {
	SortByOrder(f.Fields.LinkGroups, func(g FooterLinkGroupEntry) int { return g.Fields.Order })
	for i := range f.Fields.LinkGroups {
		SortByOrder(f.Fields.LinkGroups[i].Fields.Links, func(l FooterLinkEntry) int { return l.Fields.Order })
	}
	SortByOrder(f.Fields.SocialLinks, func(s SocialLinkEntry) int { return s.Fields.Order })
}
