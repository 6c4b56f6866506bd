package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/content"
	"github.com/landingpro/landing/backend/go-services/internal/richtext"
)

func ptr[T any](v T) *T { return &v }

func asset(url string, w, h int) *cms.Asset {
	return &cms.Asset{Fields: cms.AssetFields{
		Title: "asset",
		File: &cms.AssetFile{
			URL:         url,
			ContentType: "image/jpeg",
			Details:     cms.AssetDetails{Image: &cms.ImageSize{Width: w, Height: h}},
		},
	}}
}

func TestFromResult(t *testing.T) {
	nav := &content.NavigationEntry{}
	assert.Equal(t, KindLoaded, FromResult(content.Result[*content.NavigationEntry]{Success: true, Data: nav}).Kind)
	assert.Equal(t, KindEmpty, FromResult(content.Result[*content.NavigationEntry]{Success: true}).Kind)

	failed := FromResult(content.Result[*content.NavigationEntry]{Error: "Contentful client not available"})
	assert.Equal(t, KindError, failed.Kind)
	assert.Equal(t, "Contentful client not available", failed.Reason)
	assert.False(t, failed.OK())
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://images.ctfassets.net/space/logo.png?auto=format&q=80&w=800",
		ImageURL("//images.ctfassets.net/space/logo.png", 800, 0))
	assert.Equal(t, "https://example.com/a.jpg?auto=format&fit=crop&q=75&w=1200",
		ImageURL("https://example.com/a.jpg?fit=crop", 1200, 75))
	assert.Equal(t, "/static/logo.png", ImageURL("/static/logo.png", 100, 80))
	assert.Equal(t, "", ImageURL("", 100, 80))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello...", Truncate("hello world", 5))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
}

func TestNavigationFallbacks(t *testing.T) {
	v := Navigation(Failed[content.NavigationEntry]("boom"))
	assert.Equal(t, "LandingPro", v.Brand)
	require.Len(t, v.Items, 3)
	assert.Len(t, v.Items[2].Dropdown, 4)
	assert.Equal(t, "Contact Us", v.CtaText)

	entry := &content.NavigationEntry{Fields: content.NavigationFields{
		Title: "Acme",
		Logo:  asset("//images.ctfassets.net/logo.png", 240, 60),
		MenuItems: []content.MenuItemEntry{
			{Fields: content.MenuItemFields{Label: "Docs", Type: "direct", Link: "/docs"}},
			{Fields: content.MenuItemFields{Label: "More", Type: "dropdown", DropdownItems: []content.DropdownItemEntry{
				{Fields: content.DropdownItemFields{Label: "Blog", Link: "/blog"}},
			}}},
		},
	}}
	v = Navigation(Loaded(entry))
	assert.Equal(t, "Acme", v.Brand)
	assert.Equal(t, "Contact Us", v.CtaText, "cta text falls back field by field")
	require.NotNil(t, v.Logo)
	assert.Contains(t, v.Logo.URL, "https://images.ctfassets.net/logo.png?")
	assert.Equal(t, "/", v.Items[1].Href)
	assert.Equal(t, []LinkView{{Label: "Blog", Href: "/blog"}}, v.Items[1].Dropdown)
}

func TestHeroFallbacks(t *testing.T) {
	v := Hero(Empty[content.HeroSectionEntry]())
	assert.Equal(t, "Transform Your", v.Title)
	assert.Equal(t, "Digital Presence", v.HighlightedTitle)
	assert.Len(t, v.Companies, 4)

	entry := &content.HeroSectionEntry{Fields: content.HeroSectionFields{
		Title:                 "Build faster",
		HighlightedTitle:      "with us",
		BackgroundImageMobile: asset("https://cdn.example.com/m.jpg", 800, 1200),
		BackgroundImageAlt:    "Team at work",
		SecondaryCta:          &content.CtaButtonEntry{Fields: content.CtaButtonFields{Text: "Learn more", Link: "#work", Style: "outline", OpenInNewTab: true}},
	}}
	v = Hero(Loaded(entry))
	assert.Equal(t, "Build faster", v.Title)
	assert.Contains(t, v.BackgroundMobile.URL, "https://cdn.example.com/m.jpg?")
	assert.Equal(t, "Team at work", v.BackgroundMobile.Alt)
	_, desktop := heroFallbackImages()
	assert.Equal(t, desktop, v.BackgroundDesktop, "missing desktop asset uses the built-in image")
	require.NotNil(t, v.Primary)
	assert.Equal(t, "Get Started Today", v.Primary.Text)
	require.NotNil(t, v.Secondary)
	assert.True(t, v.Secondary.NewTab)
	assert.False(t, v.ShowTrust)
	assert.Empty(t, v.Companies)
}

func TestCarouselDefaults(t *testing.T) {
	slides := []content.CarouselSlideEntry{
		{Fields: content.CarouselSlideFields{Title: "One", Image: asset("https://cdn.example.com/1.jpg", 1200, 675)}},
		{Fields: content.CarouselSlideFields{Title: "Broken"}},
		{Fields: content.CarouselSlideFields{Title: "Two", Image: asset("https://cdn.example.com/2.jpg", 1200, 675)}},
	}
	v := Carousel(Loaded(&content.CarouselSectionEntry{Fields: content.CarouselSectionFields{Title: "Work", Slides: slides}}))
	assert.True(t, v.AutoAdvance)
	assert.Equal(t, int64(5000), v.IntervalMS)
	require.Len(t, v.Slides, 2)
	assert.Equal(t, "Two", v.Slides[1].Title)
	assert.True(t, v.ShowIndicators)

	v = Carousel(Loaded(&content.CarouselSectionEntry{Fields: content.CarouselSectionFields{
		AutoAdvance:         ptr(false),
		AutoAdvanceInterval: ptr(45),
		ShowThumbnails:      ptr(false),
		Slides:              slides[1:2],
	}}))
	assert.False(t, v.AutoAdvance)
	assert.Equal(t, int64(20000), v.IntervalMS)
	assert.False(t, v.ShowThumbnails)
	assert.Len(t, v.Slides, 5, "no usable slides falls back to the built-in ones")
	assert.Equal(t, "Our Work", v.Title)
}

func TestServicesLayouts(t *testing.T) {
	body, err := richtext.Parse(map[string]any{
		"nodeType": "document",
		"content": []any{map[string]any{
			"nodeType": "paragraph",
			"content": []any{map[string]any{
				"nodeType": "text", "value": "Fast sites", "marks": []any{map[string]any{"type": "bold"}},
			}},
		}},
	})
	require.NoError(t, err)

	items := make([]content.ServiceItemEntry, 3)
	for i := range items {
		items[i] = content.ServiceItemEntry{Fields: content.ServiceItemFields{
			Title:   "S",
			Content: body,
			Image:   asset("https://cdn.example.com/s.jpg", 2000, 1300),
		}}
	}
	sides := func(layout string) []bool {
		v := Services(Loaded(&content.ServicesSectionEntry{Fields: content.ServicesSectionFields{Layout: layout, Services: items}}))
		out := make([]bool, 0, len(v.Items))
		for _, it := range v.Items {
			out = append(out, it.ImageRight)
		}
		return out
	}
	assert.Equal(t, []bool{true, false, true}, sides(""))
	assert.Equal(t, []bool{true, false, true}, sides(LayoutAlternating))
	assert.Equal(t, []bool{false, false, false}, sides(LayoutUniformLeft))
	assert.Equal(t, []bool{true, true, true}, sides(LayoutUniformRight))

	v := Services(Loaded(&content.ServicesSectionEntry{Fields: content.ServicesSectionFields{Services: items[:1]}}))
	assert.Contains(t, string(v.Items[0].Body), "<strong>Fast sites</strong>")
	assert.Equal(t, "gray", v.Background)
	assert.Equal(t, "Our Services", v.Title)
}

func TestFooter(t *testing.T) {
	v := Footer(Failed[content.FooterSectionEntry]("down"), 2026)
	assert.Equal(t, "© 2026 LandingPro Private Limited. All rights reserved.", v.Copyright)
	require.Len(t, v.Groups, 3)
	assert.Equal(t, "Legal", v.Groups[2].Title)
	var labels []string
	for _, s := range v.Social {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Twitter", "LinkedIn", "GitHub", "Facebook"}, labels)

	entry := &content.FooterSectionEntry{Fields: content.FooterSectionFields{
		CompanyName:   "Acme",
		CopyrightText: "Acme Inc.",
		ShowBackToTop: ptr(false),
		LinkGroups: []content.FooterLinkGroupEntry{{Fields: content.FooterLinkGroupFields{
			Title: "Docs",
			Links: []content.FooterLinkEntry{{Fields: content.FooterLinkFields{Label: "API", URL: "https://api.example.com", OpenInNewTab: true}}},
		}}},
		SocialLinks: []content.SocialLinkEntry{{Fields: content.SocialLinkFields{URL: "https://dribbble.com/acme", Icon: "dribbble"}}},
	}}
	v = Footer(Loaded(entry), 2030)
	assert.Equal(t, "© 2030 Acme Inc.", v.Copyright)
	assert.False(t, v.ShowBackToTop)
	assert.Equal(t, "dark", v.Background)
	assert.True(t, v.Groups[0].Links[0].NewTab)
	assert.Equal(t, "Dribbble", v.Social[0].Label)
}

func TestRendererPlaceholderPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	page := BuildPage(content.HomeSections{}, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	page.SetPreview(true)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, page))

	html := buf.String()
	assert.Contains(t, html, "<title>LandingPro</title>")
	assert.Contains(t, html, "Preview mode")
	assert.Contains(t, html, "Transform Your")
	assert.Contains(t, html, "Our Work")
	assert.Contains(t, html, `data-interval="5000"`)
	assert.Contains(t, html, "<strong>modern, responsive websites</strong>")
	assert.Contains(t, html, "© 2026 LandingPro Private Limited. All rights reserved.")
	assert.Contains(t, html, "Contact Us")
}

func TestCarouselSlidesWrap(t *testing.T) {
	slides := []content.CarouselSlideEntry{
		{Fields: content.CarouselSlideFields{Title: "One", Image: asset("https://cdn.example.com/1.jpg", 1200, 675)}},
		{Fields: content.CarouselSlideFields{Title: "Two", Image: asset("https://cdn.example.com/2.jpg", 1200, 675)}},
		{Fields: content.CarouselSlideFields{Title: "Three", Image: asset("https://cdn.example.com/3.jpg", 1200, 675)}},
	}
	v := Carousel(Loaded(&content.CarouselSectionEntry{Fields: content.CarouselSectionFields{Slides: slides}}))
	require.Len(t, v.Slides, 3)
	assert.Equal(t, [2]int{2, 1}, [2]int{v.Slides[0].Prev, v.Slides[0].Next})
	assert.Equal(t, [2]int{0, 2}, [2]int{v.Slides[1].Prev, v.Slides[1].Next})
	assert.Equal(t, [2]int{1, 0}, [2]int{v.Slides[2].Prev, v.Slides[2].Next})

	def := Carousel(Failed[content.CarouselSectionEntry]("down"))
	last := len(def.Slides) - 1
	assert.Equal(t, last, def.Slides[0].Prev)
	assert.Equal(t, 0, def.Slides[last].Next)
}

func TestRendererCarouselControls(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, BuildPage(content.HomeSections{}, now)))
	html := buf.String()
	assert.Contains(t, html, `data-step="prev"`)
	assert.Contains(t, html, `data-step="next"`)
	assert.Contains(t, html, `data-goto="4"`)
	assert.Contains(t, html, `data-index="0" data-prev="4" data-next="1"`)
	assert.Contains(t, html, "EventSource('/api/carousel-section/stream')")
	assert.NotContains(t, html, "data-preview")

	page := BuildPage(content.HomeSections{}, now)
	page.SetPreview(true)
	buf.Reset()
	require.NoError(t, r.Page(&buf, page))
	assert.Contains(t, buf.String(), `class="carousel" data-interval="5000" data-preview`)

	single := BuildPage(content.HomeSections{}, now)
	single.Carousel.Slides = single.Carousel.Slides[:1]
	linkSlides(single.Carousel.Slides)
	buf.Reset()
	require.NoError(t, r.Page(&buf, single))
	assert.NotContains(t, buf.String(), `data-step="prev"`)
}
