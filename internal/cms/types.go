// Package cms talks to the headless CMS: the read-only delivery/preview API,
// the management API used by the setup scripts, and an in-memory backend
// with the same surface for local development and tests.
package cms

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
)

// Sys is the system metadata block every CMS resource carries.
type Sys struct {
	ID               string    `json:"id" yaml:"id"`
	Type             string    `json:"type" yaml:"type"`
	LinkType         string    `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Version          int       `json:"version,omitempty" yaml:"version,omitempty"`
	PublishedVersion int       `json:"publishedVersion,omitempty" yaml:"publishedVersion,omitempty"`
	ContentType      *Link     `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// Link points at another resource by id.
type Link struct {
	Sys Sys `json:"sys" yaml:"sys"`
}

// NewLink returns a link of the given type ("Entry", "Asset", "ContentType").
func NewLink(linkType, id string) *Link {
	return &Link{Sys: Sys{Type: "Link", LinkType: linkType, ID: id}}
}

// Entry is a content entry as returned by the delivery API (single locale).
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// ContentTypeID returns the id of the entry's content type.
func (e *Entry) ContentTypeID() string {
	if e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

// Asset is a media file.
type Asset struct {
	Sys    Sys         `json:"sys"`
	Fields AssetFields `json:"fields"`
}

type AssetFields struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	File        *AssetFile `json:"file,omitempty"`
}

type AssetFile struct {
	URL         string       `json:"url"`
	FileName    string       `json:"fileName,omitempty"`
	ContentType string       `json:"contentType"`
	Details     AssetDetails `json:"details"`
}

type AssetDetails struct {
	Size  int        `json:"size"`
	Image *ImageSize `json:"image,omitempty"`
}

type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Info returns the metadata asset validations are checked against.
func (a *Asset) Info() contentmodel.AssetInfo {
	f := a.Fields.File
	if f == nil {
		return contentmodel.AssetInfo{}
	}
	info := contentmodel.AssetInfo{ContentType: f.ContentType, Size: f.Details.Size}
	if f.Details.Image != nil {
		info.Width = f.Details.Image.Width
		info.Height = f.Details.Image.Height
	}
	return info
}

// Includes carries the linked resources referenced by a collection.
type Includes struct {
	Entry []Entry `json:"Entry,omitempty"`
	Asset []Asset `json:"Asset,omitempty"`
}

// EntryCollection is a page of entries plus their includes.
type EntryCollection struct {
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
	Items    []Entry  `json:"items"`
	Includes Includes `json:"includes"`
}

// ContentType is a content type as stored by the management API.
type ContentType struct {
	Sys                      Sys `json:"sys" yaml:"sys"`
	contentmodel.ContentType `yaml:",inline"`
}

// Published reports whether the current version of ct is published.
func (ct *ContentType) Published() bool {
	return ct.Sys.PublishedVersion > 0 && ct.Sys.Version == ct.Sys.PublishedVersion+1
}

// Query selects entries from the delivery API.
type Query struct {
	ContentType string
	Include     int
	Limit       int
	Skip        int
	Order       string
}

// Values encodes q as delivery API query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.ContentType != "" {
		v.Set("content_type", q.ContentType)
	}
	if q.Include > 0 {
		v.Set("include", strconv.Itoa(q.Include))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	return v
}

// Reader reads published (or preview) entries.
type Reader interface {
	GetEntries(ctx context.Context, q Query) (*EntryCollection, error)
}

// Manager is the subset of the management API used for provisioning and
// export.
type Manager interface {
	GetContentType(ctx context.Context, id string) (*ContentType, error)
	CreateContentTypeWithID(ctx context.Context, id string, model contentmodel.ContentType) (*ContentType, error)
	PublishContentType(ctx context.Context, ct *ContentType) (*ContentType, error)
	ListContentTypes(ctx context.Context) ([]ContentType, error)
}
