package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/landingpro/landing/backend/go-services/internal/carousel"
	"github.com/landingpro/landing/backend/go-services/internal/content"
)

// Services layouts.
const (
	LayoutAlternating  = "alternating"
	LayoutUniformLeft  = "uniform-left"
	LayoutUniformRight = "uniform-right"
)

type LinkView struct {
	Label  string
	Href   string
	NewTab bool
}

type NavItemView struct {
	Label    string
	Href     string
	Dropdown []LinkView
}

type NavView struct {
	Brand   string
	Logo    *ImageView
	Items   []NavItemView
	CtaText string
	CtaLink string
}

type ButtonView struct {
	Text   string
	Href   string
	Style  string
	NewTab bool
}

type CompanyView struct {
	Name    string
	Logo    *ImageView
	Website string
}

type HeroView struct {
	Title             string
	HighlightedTitle  string
	SubtitleMobile    string
	SubtitleDesktop   string
	BackgroundMobile  ImageView
	BackgroundDesktop ImageView
	Primary           *ButtonView
	Secondary         *ButtonView
	ShowTrust         bool
	TrustTitle        string
	Companies         []CompanyView
}

type SlideView struct {
	Title       string
	Image       ImageView
	Description string
	Link        string
	// Prev and Next are the indexes the arrows move to from this slide.
	Prev int
	Next int
}

type CarouselView struct {
	Title          string
	Subtitle       string
	Slides         []SlideView
	AutoAdvance    bool
	IntervalMS     int64
	ShowThumbnails bool
	ShowIndicators bool
	// Preview pages advance on a local timer instead of the event stream,
	// which only sees published slides.
	Preview bool
}

type ServiceView struct {
	Title      string
	Body       template.HTML
	Image      ImageView
	Featured   bool
	ImageRight bool
}

type ServicesView struct {
	Title      string
	Subtitle   string
	Background string
	Items      []ServiceView
}

type FooterGroupView struct {
	Title string
	Links []LinkView
}

type SocialView struct {
	Label string
	Href  string
	Icon  string
}

type FooterView struct {
	CompanyName   string
	Logo          *ImageView
	Description   string
	Email         string
	Phone         string
	Address       string
	Groups        []FooterGroupView
	Social        []SocialView
	Copyright     string
	ShowBackToTop bool
	Background    string
}

// Page is everything the landing page template needs.
type Page struct {
	Navigation NavView
	Hero       HeroView
	Carousel   CarouselView
	Services   ServicesView
	Footer     FooterView
	Preview    bool
}

// BuildPage builds view models for every section of the landing page.
func BuildPage(home content.HomeSections, now time.Time) Page {
	return Page{
		Navigation: Navigation(FromResult(home.Navigation)),
		Hero:       Hero(FromResult(home.Hero)),
		Carousel:   Carousel(FromResult(home.Carousel)),
		Services:   Services(FromResult(home.Services)),
		Footer:     Footer(FromResult(home.Footer), now.Year()),
	}
}

// SetPreview marks the page, and the sections that behave differently for
// drafts, as a preview.
func (p *Page) SetPreview(on bool) {
	p.Preview = on
	p.Carousel.Preview = on
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Navigation builds the navbar. Without an entry, or when the entry has no
// menu items, the built-in menu is used.
func Navigation(s State[content.NavigationEntry]) NavView {
	if !s.OK() || len(s.Entry.Fields.MenuItems) == 0 {
		return placeholderNav()
	}
	f := s.Entry.Fields
	v := NavView{
		Brand:   orDefault(f.Title, brandName),
		CtaText: orDefault(f.CtaText, defaultCtaText),
		CtaLink: orDefault(f.CtaLink, defaultCtaLink),
	}
	if img, ok := assetImage(f.Logo, v.Brand, 240, 0); ok {
		v.Logo = &img
	}
	for _, m := range f.MenuItems {
		item := NavItemView{Label: m.Fields.Label, Href: orDefault(m.Fields.Link, "/")}
		if m.Fields.Type == "dropdown" {
			for _, d := range m.Fields.DropdownItems {
				item.Dropdown = append(item.Dropdown, LinkView{Label: d.Fields.Label, Href: orDefault(d.Fields.Link, "/")})
			}
		}
		v.Items = append(v.Items, item)
	}
	return v
}

func button(c *content.CtaButtonEntry) *ButtonView {
	if c == nil || c.Fields.Text == "" {
		return nil
	}
	return &ButtonView{
		Text:   c.Fields.Text,
		Href:   orDefault(c.Fields.Link, "/"),
		Style:  orDefault(c.Fields.Style, "primary"),
		NewTab: c.Fields.OpenInNewTab,
	}
}

// Hero builds the hero section. Missing background images fall back to the
// built-in ones individually; a missing primary call to action falls back to
// the built-in button.
func Hero(s State[content.HeroSectionEntry]) HeroView {
	if !s.OK() {
		return placeholderHero()
	}
	f := s.Entry.Fields
	def := placeholderHero()
	v := HeroView{
		Title:            orDefault(f.Title, def.Title),
		HighlightedTitle: orDefault(f.HighlightedTitle, def.HighlightedTitle),
		SubtitleMobile:   orDefault(f.SubtitleMobile, def.SubtitleMobile),
		SubtitleDesktop:  orDefault(f.SubtitleDesktop, def.SubtitleDesktop),
		Primary:          button(f.PrimaryCta),
		Secondary:        button(f.SecondaryCta),
		ShowTrust:        f.ShowTrustSection,
		TrustTitle:       orDefault(f.TrustSectionTitle, def.TrustTitle),
	}
	if v.Primary == nil {
		v.Primary = def.Primary
	}

	alt := orDefault(f.BackgroundImageAlt, heroFallbackAlt)
	var ok bool
	if v.BackgroundMobile, ok = assetImage(f.BackgroundImageMobile, alt, 800, 75); !ok {
		v.BackgroundMobile = def.BackgroundMobile
	}
	if v.BackgroundDesktop, ok = assetImage(f.BackgroundImageDesktop, alt, 2072, 85); !ok {
		v.BackgroundDesktop = def.BackgroundDesktop
	}

	for _, c := range f.CompanyLogos {
		cv := CompanyView{Name: c.Fields.Name, Website: c.Fields.Website}
		if img, ok := assetImage(c.Fields.Logo, orDefault(c.Fields.AltText, c.Fields.Name), 240, 0); ok {
			cv.Logo = &img
		}
		v.Companies = append(v.Companies, cv)
	}
	if v.ShowTrust && len(v.Companies) == 0 {
		v.Companies = def.Companies
	}
	return v
}

// Carousel builds the carousel section. Slides whose image is missing are
// skipped; if none remain the built-in slides are shown.
func Carousel(s State[content.CarouselSectionEntry]) CarouselView {
	v := carouselView(s)
	linkSlides(v.Slides)
	return v
}

// linkSlides sets the arrow targets of every slide, wrapping at both ends.
func linkSlides(slides []SlideView) {
	st := carousel.New(len(slides))
	for i := range slides {
		st.GoTo(i)
		slides[i].Prev = st.Prev()
		st.GoTo(i)
		slides[i].Next = st.Next()
	}
}

func carouselView(s State[content.CarouselSectionEntry]) CarouselView {
	if !s.OK() {
		return placeholderCarousel()
	}
	f := s.Entry.Fields
	def := placeholderCarousel()
	cfg := carousel.Config{AutoAdvance: f.AutoAdvance, Interval: f.AutoAdvanceInterval}
	v := CarouselView{
		Title:          orDefault(f.Title, def.Title),
		Subtitle:       orDefault(f.Subtitle, def.Subtitle),
		AutoAdvance:    cfg.Enabled(),
		IntervalMS:     cfg.Period().Milliseconds(),
		ShowThumbnails: boolOr(f.ShowThumbnails, true),
		ShowIndicators: boolOr(f.ShowIndicators, true),
	}
	for _, sl := range f.Slides {
		img, ok := assetImage(sl.Fields.Image, orDefault(sl.Fields.AltText, sl.Fields.Title), 1200, 80)
		if !ok {
			continue
		}
		v.Slides = append(v.Slides, SlideView{
			Title:       sl.Fields.Title,
			Image:       img,
			Description: sl.Fields.Description,
			Link:        sl.Fields.Link,
		})
	}
	if len(v.Slides) == 0 {
		v.Slides = def.Slides
	}
	return v
}

// imageRight reports which side the image of the i-th service sits on.
func imageRight(layout string, i int) bool {
	switch layout {
	case LayoutUniformLeft:
		return false
	case LayoutUniformRight:
		return true
	}
	return i%2 == 0
}

// Services builds the services showcase. Items without an image are skipped;
// if none remain the built-in services are shown.
func Services(s State[content.ServicesSectionEntry]) ServicesView {
	if !s.OK() {
		return placeholderServicesView()
	}
	f := s.Entry.Fields
	def := placeholderServicesView()
	layout := orDefault(f.Layout, LayoutAlternating)
	v := ServicesView{
		Title:      orDefault(f.Title, def.Title),
		Subtitle:   orDefault(f.Subtitle, def.Subtitle),
		Background: orDefault(f.BackgroundColor, def.Background),
	}
	for _, it := range f.Services {
		img, ok := assetImage(it.Fields.Image, orDefault(it.Fields.ImageAlt, it.Fields.Title), 2072, 80)
		if !ok {
			continue
		}
		v.Items = append(v.Items, ServiceView{
			Title:      it.Fields.Title,
			Body:       it.Fields.Content.HTML(),
			Image:      img,
			Featured:   it.Fields.Featured,
			ImageRight: imageRight(layout, len(v.Items)),
		})
	}
	if len(v.Items) == 0 {
		v.Items = def.Items
	}
	return v
}

var (
	titleCase   = cases.Title(language.English)
	brandLabels = map[string]string{
		"linkedin": "LinkedIn",
		"github":   "GitHub",
		"youtube":  "YouTube",
	}
)

// socialLabel prefers the platform name and otherwise derives one from the
// icon id.
func socialLabel(platform, icon string) string {
	if p := strings.TrimSpace(platform); p != "" {
		return p
	}
	if l, ok := brandLabels[icon]; ok {
		return l
	}
	return titleCase.String(icon)
}

func copyright(year int, text string) string {
	return fmt.Sprintf("© %d %s", year, text)
}

// Footer builds the footer. year is stamped into the copyright line.
func Footer(s State[content.FooterSectionEntry], year int) FooterView {
	if !s.OK() {
		return placeholderFooter(year)
	}
	f := s.Entry.Fields
	def := placeholderFooter(year)
	v := FooterView{
		CompanyName:   orDefault(f.CompanyName, def.CompanyName),
		Description:   orDefault(f.CompanyDescription, def.Description),
		Email:         orDefault(f.Email, def.Email),
		Phone:         f.Phone,
		Address:       f.Address,
		ShowBackToTop: boolOr(f.ShowBackToTop, true),
		Background:    orDefault(f.BackgroundColor, def.Background),
	}
	if f.CopyrightText != "" {
		v.Copyright = copyright(year, f.CopyrightText)
	} else {
		v.Copyright = def.Copyright
	}
	if img, ok := assetImage(f.CompanyLogo, v.CompanyName, 64, 0); ok {
		v.Logo = &img
	}
	for _, g := range f.LinkGroups {
		gv := FooterGroupView{Title: g.Fields.Title}
		for _, l := range g.Fields.Links {
			gv.Links = append(gv.Links, LinkView{Label: l.Fields.Label, Href: orDefault(l.Fields.URL, "/"), NewTab: l.Fields.OpenInNewTab})
		}
		v.Groups = append(v.Groups, gv)
	}
	if len(v.Groups) == 0 {
		v.Groups = def.Groups
	}
	for _, sl := range f.SocialLinks {
		v.Social = append(v.Social, SocialView{
			Label: socialLabel(sl.Fields.Platform, sl.Fields.Icon),
			Href:  sl.Fields.URL,
			Icon:  sl.Fields.Icon,
		})
	}
	return v
}
