package cms

import "github.com/landingpro/landing/backend/go-services/internal/contentmodel"

// ResolveLinks returns the collection items as {"sys", "fields"} maps with
// link objects replaced by the linked entries and assets, up to depth levels.
// Links past the depth limit are left as-is. Links whose target is missing
// are dropped from arrays and left as-is elsewhere.
func ResolveLinks(coll *EntryCollection, depth int) []map[string]any {
	if coll == nil {
		return nil
	}
	r := linkResolver{
		entries: make(map[string]*Entry, len(coll.Items)+len(coll.Includes.Entry)),
		assets:  make(map[string]*Asset, len(coll.Includes.Asset)),
	}
	for i := range coll.Includes.Entry {
		r.entries[coll.Includes.Entry[i].Sys.ID] = &coll.Includes.Entry[i]
	}
	for i := range coll.Items {
		r.entries[coll.Items[i].Sys.ID] = &coll.Items[i]
	}
	for i := range coll.Includes.Asset {
		r.assets[coll.Includes.Asset[i].Sys.ID] = &coll.Includes.Asset[i]
	}

	out := make([]map[string]any, 0, len(coll.Items))
	for i := range coll.Items {
		out = append(out, r.entry(&coll.Items[i], depth))
	}
	return out
}

type linkResolver struct {
	entries map[string]*Entry
	assets  map[string]*Asset
}

func (r linkResolver) entry(e *Entry, depth int) map[string]any {
	fields := make(map[string]any, len(e.Fields))
	for k, v := range e.Fields {
		fields[k] = r.value(v, depth)
	}
	return map[string]any{"sys": e.Sys, "fields": fields}
}

func (r linkResolver) value(v any, depth int) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if id, linkType, ok := contentmodel.LinkTarget(item); ok && depth > 0 {
				if target, found := r.link(id, linkType, depth); found {
					out = append(out, target)
				}
				continue
			}
			out = append(out, r.value(item, depth))
		}
		return out
	case map[string]any:
		if id, linkType, ok := contentmodel.LinkTarget(t); ok && depth > 0 {
			if target, found := r.link(id, linkType, depth); found {
				return target
			}
		}
		return t
	}
	return v
}

func (r linkResolver) link(id, linkType string, depth int) (any, bool) {
	switch linkType {
	case contentmodel.LinkEntry:
		if e, ok := r.entries[id]; ok {
			return r.entry(e, depth-1), true
		}
	case contentmodel.LinkAsset:
		if a, ok := r.assets[id]; ok {
			return *a, true
		}
	}
	return nil, false
}
