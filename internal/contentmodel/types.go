package contentmodel

// Field types understood by the CMS.
const (
	TypeSymbol   = "Symbol"
	TypeText     = "Text"
	TypeRichText = "RichText"
	TypeInteger  = "Integer"
	TypeBoolean  = "Boolean"
	TypeLink     = "Link"
	TypeArray    = "Array"

	LinkEntry = "Entry"
	LinkAsset = "Asset"
)

// DefaultLocale is the locale used for default field values.
const DefaultLocale = "en-US"

// ContentType is the declarative definition of a content type as sent to the
// management API (everything except sys).
type ContentType struct {
	Name         string  `json:"name" yaml:"name"`
	DisplayField string  `json:"displayField" yaml:"displayField"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields       []Field `json:"fields" yaml:"fields"`
}

// Field is a single named, typed, validated field of a content type.
type Field struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Type         string         `json:"type" yaml:"type"`
	LinkType     string         `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Required     bool           `json:"required" yaml:"required"`
	Localized    bool           `json:"localized" yaml:"localized"`
	Items        *Items         `json:"items,omitempty" yaml:"items,omitempty"`
	Validations  []Validation   `json:"validations,omitempty" yaml:"validations,omitempty"`
	DefaultValue map[string]any `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// Items describes the element type of an Array field.
type Items struct {
	Type        string       `json:"type" yaml:"type"`
	LinkType    string       `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// Validation holds exactly one declarative constraint. Unset members are
// omitted on the wire.
type Validation struct {
	Size                 *Bounds          `json:"size,omitempty" yaml:"size,omitempty"`
	Range                *Bounds          `json:"range,omitempty" yaml:"range,omitempty"`
	In                   []string         `json:"in,omitempty" yaml:"in,omitempty"`
	Regexp               *Pattern         `json:"regexp,omitempty" yaml:"regexp,omitempty"`
	LinkContentType      []string         `json:"linkContentType,omitempty" yaml:"linkContentType,omitempty"`
	LinkMimetypeGroup    []string         `json:"linkMimetypeGroup,omitempty" yaml:"linkMimetypeGroup,omitempty"`
	AssetImageDimensions *ImageDimensions `json:"assetImageDimensions,omitempty" yaml:"assetImageDimensions,omitempty"`
	AssetFileSize        *Bounds          `json:"assetFileSize,omitempty" yaml:"assetFileSize,omitempty"`
}

// Bounds is an inclusive min/max pair; either side may be open.
type Bounds struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// Pattern is a regular expression constraint with JS-style flags.
type Pattern struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Flags   string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// ImageDimensions bounds the pixel size of a linked image asset.
type ImageDimensions struct {
	Width  *Bounds `json:"width,omitempty" yaml:"width,omitempty"`
	Height *Bounds `json:"height,omitempty" yaml:"height,omitempty"`
}

// ModelDefinition pairs a content type with the ids it links to.
type ModelDefinition struct {
	ID           string
	Model        ContentType
	Dependencies []string
}

// Field returns the field with the given id.
func (ct ContentType) Field(id string) (Field, bool) {
	for _, f := range ct.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

func intp(v int) *int { return &v }

func between(min, max int) *Bounds { return &Bounds{Min: intp(min), Max: intp(max)} }

func atMost(max int) *Bounds { return &Bounds{Max: intp(max)} }

func size(min, max int) Validation { return Validation{Size: between(min, max)} }

func rangeOf(min, max int) Validation { return Validation{Range: between(min, max)} }

func oneOf(values ...string) Validation { return Validation{In: values} }

func matches(pattern string) Validation {
	return Validation{Regexp: &Pattern{Pattern: pattern, Flags: "i"}}
}

func linksTo(ids ...string) Validation { return Validation{LinkContentType: ids} }

// imageAsset returns the standard validations for an image asset link.
func imageAsset(minW, maxW, minH, maxH, maxBytes int) []Validation {
	return []Validation{
		{LinkMimetypeGroup: []string{"image"}},
		{AssetImageDimensions: &ImageDimensions{Width: between(minW, maxW), Height: between(minH, maxH)}},
		{AssetFileSize: atMost(maxBytes)},
	}
}

func entryArray(linkContentType string) *Items {
	return &Items{Type: TypeLink, LinkType: LinkEntry, Validations: []Validation{linksTo(linkContentType)}}
}

// Link patterns shared by several content types.
const (
	linkPattern       = `^(/|http|https|mailto:|tel:)`
	anchorLinkPattern = `^(/|http|https|mailto:|tel:|#)`
	httpPattern       = `^(https?://)`
	httpsPattern      = `^https://`
	emailPattern      = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)
