package contentmodel

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/landingpro/landing/backend/go-services/internal/richtext"
)

// ErrInvalidEntry wraps every validation failure returned by ValidateFields.
var ErrInvalidEntry = errors.New("entry failed validation")

// FieldError describes one violated constraint.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// AssetInfo is the metadata asset validations are evaluated against.
type AssetInfo struct {
	ContentType string
	Width       int
	Height      int
	Size        int
}

// LinkResolver looks up link targets. A nil resolver skips target checks.
type LinkResolver interface {
	EntryContentType(id string) (string, bool)
	Asset(id string) (AssetInfo, bool)
}

// ValidateFields evaluates the declarative constraints of ct against an
// entry's (unlocalized) field values.
func ValidateFields(ct ContentType, fields map[string]any, links LinkResolver) error {
	var errs []error
	for _, f := range ct.Fields {
		v, ok := fields[f.ID]
		if !ok || isEmpty(v) {
			if f.Required {
				errs = append(errs, &FieldError{Field: f.ID, Message: "is required"})
			}
			continue
		}
		errs = append(errs, check(f.ID, f.Type, f.LinkType, f.Validations, v, links)...)
		if f.Type == TypeArray && f.Items != nil {
			items, _ := v.([]any)
			for i, item := range items {
				id := fmt.Sprintf("%s[%d]", f.ID, i)
				errs = append(errs, check(id, f.Items.Type, f.Items.LinkType, f.Items.Validations, item, links)...)
			}
		}
	}
	for id := range fields {
		if _, ok := ct.Field(id); !ok {
			errs = append(errs, &FieldError{Field: id, Message: "is not defined on " + ct.Name})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidEntry, errors.Join(errs...))
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}

func check(id, typ, linkType string, vs []Validation, v any, links LinkResolver) []error {
	fail := func(format string, args ...any) []error {
		return []error{&FieldError{Field: id, Message: fmt.Sprintf(format, args...)}}
	}
	switch typ {
	case TypeSymbol, TypeText:
		s, ok := v.(string)
		if !ok {
			return fail("expected a string")
		}
		return checkString(id, s, vs)
	case TypeRichText:
		doc, err := richtext.Parse(v)
		if err != nil {
			return fail("invalid rich text: %v", err)
		}
		return checkString(id, doc.PlainText(), onlySize(vs))
	case TypeInteger:
		n, ok := asInt(v)
		if !ok {
			return fail("expected an integer")
		}
		var errs []error
		for _, val := range vs {
			if val.Range != nil && !val.Range.contains(n) {
				errs = append(errs, &FieldError{Field: id, Message: "out of range " + val.Range.String()})
			}
		}
		return errs
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return fail("expected a boolean")
		}
		return nil
	case TypeLink:
		return checkLink(id, linkType, vs, v, links)
	case TypeArray:
		items, ok := v.([]any)
		if !ok {
			return fail("expected an array")
		}
		var errs []error
		for _, val := range vs {
			if val.Size != nil && !val.Size.contains(len(items)) {
				errs = append(errs, &FieldError{Field: id, Message: fmt.Sprintf("has %d items, want %s", len(items), val.Size)})
			}
		}
		return errs
	}
	return fail("unknown field type %q", typ)
}

func onlySize(vs []Validation) []Validation {
	out := make([]Validation, 0, len(vs))
	for _, v := range vs {
		if v.Size != nil {
			out = append(out, Validation{Size: v.Size})
		}
	}
	return out
}

func checkString(id, s string, vs []Validation) []error {
	var errs []error
	for _, val := range vs {
		switch {
		case val.Size != nil:
			if n := utf8.RuneCountInString(s); !val.Size.contains(n) {
				errs = append(errs, &FieldError{Field: id, Message: fmt.Sprintf("length %d outside %s", n, val.Size)})
			}
		case len(val.In) > 0:
			if !slices.Contains(val.In, s) {
				errs = append(errs, &FieldError{Field: id, Message: fmt.Sprintf("%q is not one of %s", s, strings.Join(val.In, ", "))})
			}
		case val.Regexp != nil:
			re, err := compile(val.Regexp)
			if err != nil {
				errs = append(errs, &FieldError{Field: id, Message: err.Error()})
			} else if !re.MatchString(s) {
				errs = append(errs, &FieldError{Field: id, Message: fmt.Sprintf("%q does not match %s", s, val.Regexp.Pattern)})
			}
		}
	}
	return errs
}

func checkLink(id, linkType string, vs []Validation, v any, links LinkResolver) []error {
	target, kind, ok := LinkTarget(v)
	if !ok {
		return []error{&FieldError{Field: id, Message: "expected a link"}}
	}
	if linkType != "" && kind != linkType {
		return []error{&FieldError{Field: id, Message: fmt.Sprintf("links to %s, want %s", kind, linkType)}}
	}
	if links == nil {
		return nil
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, &FieldError{Field: id, Message: fmt.Sprintf(format, args...)})
	}
	if kind == LinkEntry {
		ctID, found := links.EntryContentType(target)
		if !found {
			fail("links to unknown entry %q", target)
			return errs
		}
		for _, val := range vs {
			if len(val.LinkContentType) > 0 && !slices.Contains(val.LinkContentType, ctID) {
				fail("entry %q is a %s, want %s", target, ctID, strings.Join(val.LinkContentType, " or "))
			}
		}
		return errs
	}
	asset, found := links.Asset(target)
	if !found {
		fail("links to unknown asset %q", target)
		return errs
	}
	for _, val := range vs {
		switch {
		case len(val.LinkMimetypeGroup) > 0:
			group, _, _ := strings.Cut(asset.ContentType, "/")
			if !slices.Contains(val.LinkMimetypeGroup, group) {
				fail("asset %q has type %q", target, asset.ContentType)
			}
		case val.AssetImageDimensions != nil:
			d := val.AssetImageDimensions
			if d.Width != nil && !d.Width.contains(asset.Width) {
				fail("image width %d outside %s", asset.Width, d.Width)
			}
			if d.Height != nil && !d.Height.contains(asset.Height) {
				fail("image height %d outside %s", asset.Height, d.Height)
			}
		case val.AssetFileSize != nil:
			if !val.AssetFileSize.contains(asset.Size) {
				fail("file size %d outside %s", asset.Size, val.AssetFileSize)
			}
		}
	}
	return errs
}

// LinkTarget extracts the target id and link type from a link object
// ({"sys": {"type": "Link", "linkType": ..., "id": ...}}).
func LinkTarget(v any) (id, linkType string, ok bool) {
	m, isMap := v.(map[string]any)
	if !isMap {
		return "", "", false
	}
	sys, isMap := m["sys"].(map[string]any)
	if !isMap {
		return "", "", false
	}
	if t, _ := sys["type"].(string); t != "Link" {
		return "", "", false
	}
	id, _ = sys["id"].(string)
	linkType, _ = sys["linkType"].(string)
	return id, linkType, id != ""
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func (b *Bounds) contains(n int) bool {
	if b.Min != nil && n < *b.Min {
		return false
	}
	if b.Max != nil && n > *b.Max {
		return false
	}
	return true
}

func (b *Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.Min != nil {
		lo = fmt.Sprint(*b.Min)
	}
	if b.Max != nil {
		hi = fmt.Sprint(*b.Max)
	}
	return "[" + lo + ", " + hi + "]"
}


var patterns sync.Map // map[Pattern]*regexp.Regexp

func compile(p *Pattern) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(*p); ok {
		return re.(*regexp.Regexp), nil
	}
	expr := p.Pattern
	if strings.Contains(p.Flags, "i") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", p.Pattern, err)
	}
	patterns.Store(*p, re)
	return re, nil
}
