package content

import (
	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/richtext"
)

// Entry is a resolved CMS entry with typed fields.
type Entry[F any] struct {
	Sys    cms.Sys `json:"sys"`
	Fields F       `json:"fields"`
}

type (
	NavigationEntry      = Entry[NavigationFields]
	MenuItemEntry        = Entry[MenuItemFields]
	DropdownItemEntry    = Entry[DropdownItemFields]
	HeroSectionEntry     = Entry[HeroSectionFields]
	CtaButtonEntry       = Entry[CtaButtonFields]
	CompanyLogoEntry     = Entry[CompanyLogoFields]
	CarouselSectionEntry = Entry[CarouselSectionFields]
	CarouselSlideEntry   = Entry[CarouselSlideFields]
	ServicesSectionEntry = Entry[ServicesSectionFields]
	ServiceItemEntry     = Entry[ServiceItemFields]
	FooterSectionEntry   = Entry[FooterSectionFields]
	FooterLinkGroupEntry = Entry[FooterLinkGroupFields]
	FooterLinkEntry      = Entry[FooterLinkFields]
	SocialLinkEntry      = Entry[SocialLinkFields]
)

type NavigationFields struct {
	Title     string          `json:"title"`
	Logo      *cms.Asset      `json:"logo,omitempty"`
	MenuItems []MenuItemEntry `json:"menuItems"`
	CtaText   string          `json:"ctaText,omitempty"`
	CtaLink   string          `json:"ctaLink,omitempty"`
}

type MenuItemFields struct {
	Label         string              `json:"label"`
	Type          string              `json:"type"`
	Link          string              `json:"link,omitempty"`
	DropdownItems []DropdownItemEntry `json:"dropdownItems,omitempty"`
	Order         int                 `json:"order"`
}

type DropdownItemFields struct {
	Label string `json:"label"`
	Link  string `json:"link"`
	Order int    `json:"order"`
}

type HeroSectionFields struct {
	Title                  string             `json:"title"`
	HighlightedTitle       string             `json:"highlightedTitle"`
	SubtitleMobile         string             `json:"subtitleMobile"`
	SubtitleDesktop        string             `json:"subtitleDesktop"`
	BackgroundImageMobile  *cms.Asset         `json:"backgroundImageMobile,omitempty"`
	BackgroundImageDesktop *cms.Asset         `json:"backgroundImageDesktop,omitempty"`
	BackgroundImageAlt     string             `json:"backgroundImageAlt"`
	PrimaryCta             *CtaButtonEntry    `json:"primaryCta,omitempty"`
	SecondaryCta           *CtaButtonEntry    `json:"secondaryCta,omitempty"`
	ShowTrustSection       bool               `json:"showTrustSection"`
	TrustSectionTitle      string             `json:"trustSectionTitle,omitempty"`
	CompanyLogos           []CompanyLogoEntry `json:"companyLogos,omitempty"`
}

type CtaButtonFields struct {
	Text         string `json:"text"`
	Link         string `json:"link"`
	Style        string `json:"style"`
	OpenInNewTab bool   `json:"openInNewTab"`
}

type CompanyLogoFields struct {
	Name    string     `json:"name"`
	Logo    *cms.Asset `json:"logo,omitempty"`
	AltText string     `json:"altText"`
	Website string     `json:"website,omitempty"`
}

type CarouselSectionFields struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle"`
	Slides              []CarouselSlideEntry `json:"slides"`
	AutoAdvance         *bool                `json:"autoAdvance,omitempty"`
	AutoAdvanceInterval *int                 `json:"autoAdvanceInterval,omitempty"`
	ShowThumbnails      *bool                `json:"showThumbnails,omitempty"`
	ShowIndicators      *bool                `json:"showIndicators,omitempty"`
}

type CarouselSlideFields struct {
	Title       string     `json:"title"`
	Image       *cms.Asset `json:"image,omitempty"`
	AltText     string     `json:"altText"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	Order       int        `json:"order"`
}

type ServicesSectionFields struct {
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle"`
	Services        []ServiceItemEntry `json:"services"`
	BackgroundColor string             `json:"backgroundColor,omitempty"`
	Layout          string             `json:"layout,omitempty"`
}

type ServiceItemFields struct {
	Title    string         `json:"title"`
	Content  *richtext.Node `json:"content,omitempty"`
	Image    *cms.Asset     `json:"image,omitempty"`
	ImageAlt string         `json:"imageAlt"`
	Order    int            `json:"order"`
	Featured bool           `json:"featured"`
}

type FooterSectionFields struct {
	CompanyName        string                 `json:"companyName"`
	CompanyLogo        *cms.Asset             `json:"companyLogo,omitempty"`
	CompanyDescription string                 `json:"companyDescription"`
	Email              string                 `json:"email"`
	Phone              string                 `json:"phone,omitempty"`
	Address            string                 `json:"address,omitempty"`
	LinkGroups         []FooterLinkGroupEntry `json:"linkGroups"`
	SocialLinks        []SocialLinkEntry      `json:"socialLinks,omitempty"`
	CopyrightText      string                 `json:"copyrightText"`
	ShowBackToTop      *bool                  `json:"showBackToTop,omitempty"`
	BackgroundColor    string                 `json:"backgroundColor,omitempty"`
}

type FooterLinkGroupFields struct {
	Title string            `json:"title"`
	Links []FooterLinkEntry `json:"links"`
	Order int               `json:"order"`
}

type FooterLinkFields struct {
	Label        string `json:"label"`
	URL          string `json:"url"`
	OpenInNewTab bool   `json:"openInNewTab"`
	Order        int    `json:"order"`
}

type SocialLinkFields struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}
