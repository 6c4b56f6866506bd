package render

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
)

const defaultQuality = 80

// ImageURL adds width, quality and format negotiation parameters to an
// image URL. Protocol-relative CMS asset URLs are upgraded to https.
// Unparseable or relative URLs are returned unchanged.
func ImageURL(raw string, width, quality int) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return raw
	}
	if quality <= 0 {
		quality = defaultQuality
	}
	q := u.Query()
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	q.Set("q", strconv.Itoa(quality))
	q.Set("auto", "format")
	u.RawQuery = q.Encode()
	return u.String()
}

// Truncate shortens text to n characters followed by "...".
func Truncate(text string, n int) string {
	r := []rune(text)
	if n < 0 || len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}

// ImageView is a sized image ready for an <img> tag.
type ImageView struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

// assetImage builds an image view from a resolved asset. It reports false
// when the asset is missing or was never resolved to a file.
func assetImage(a *cms.Asset, alt string, width, quality int) (ImageView, bool) {
	if a == nil || a.Fields.File == nil || a.Fields.File.URL == "" {
		return ImageView{}, false
	}
	v := ImageView{URL: ImageURL(a.Fields.File.URL, width, quality), Alt: alt}
	if alt == "" {
		v.Alt = a.Fields.Title
	}
	if img := a.Fields.File.Details.Image; img != nil {
		v.Width, v.Height = img.Width, img.Height
	}
	return v, true
}
