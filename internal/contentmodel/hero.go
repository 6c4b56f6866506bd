package contentmodel

const (
	CtaButtonID   = "ctaButton"
	CompanyLogoID = "companyLogo"
	HeroSectionID = "heroSection"
)

// CtaButton is a reusable call-to-action button.
var CtaButton = ContentType{
	Name:         "CTA Button",
	DisplayField: "text",
	Description:  "Reusable call-to-action button component for hero sections and other areas",
	Fields: []Field{
		{ID: "text", Name: "Button Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 50)}},
		{ID: "link", Name: "Button Link", Type: TypeSymbol, Required: true, Validations: []Validation{matches(anchorLinkPattern), size(1, 200)}},
		{ID: "style", Name: "Button Style", Type: TypeSymbol, Required: true, Validations: []Validation{oneOf("primary", "secondary", "outline")}},
		{ID: "openInNewTab", Name: "Open in New Tab", Type: TypeBoolean},
	},
}

// CompanyLogo is a partner logo shown in trust sections.
var CompanyLogo = ContentType{
	Name:         "Company Logo",
	DisplayField: "name",
	Description:  "Company logo for trust indicators and partner sections",
	Fields: []Field{
		{ID: "name", Name: "Company Name", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "logo", Name: "Company Logo Image", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(120, 600, 40, 200, 300000)},
		{ID: "altText", Name: "Alt Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "website", Name: "Company Website (Optional)", Type: TypeSymbol, Validations: []Validation{matches(httpPattern)}},
	},
}

// HeroSection is the page hero with responsive backgrounds, CTAs and logos.
var HeroSection = ContentType{
	Name:         "Hero Section",
	DisplayField: "title",
	Description:  "Hero section with background images, content, CTA buttons, and company logos",
	Fields: []Field{
		{ID: "title", Name: "Main Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "highlightedTitle", Name: "Highlighted Title (Gradient Text)", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "subtitleMobile", Name: "Subtitle (Mobile - Short Version)", Type: TypeText, Required: true, Validations: []Validation{size(10, 150)}},
		{ID: "subtitleDesktop", Name: "Subtitle (Desktop - Full Version)", Type: TypeText, Required: true, Validations: []Validation{size(10, 300)}},
		{ID: "backgroundImageMobile", Name: "Background Image (Mobile)", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(600, 1200, 800, 1600, 800000)},
		{ID: "backgroundImageDesktop", Name: "Background Image (Desktop)", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(1600, 4000, 900, 2400, 2000000)},
		{ID: "backgroundImageAlt", Name: "Background Image Alt Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 150)}},
		{ID: "primaryCta", Name: "Primary CTA Button", Type: TypeLink, LinkType: LinkEntry, Required: true, Validations: []Validation{linksTo(CtaButtonID)}},
		{ID: "secondaryCta", Name: "Secondary CTA Button", Type: TypeLink, LinkType: LinkEntry, Validations: []Validation{linksTo(CtaButtonID)}},
		{ID: "showTrustSection", Name: "Show Trust Section", Type: TypeBoolean},
		{ID: "trustSectionTitle", Name: "Trust Section Title", Type: TypeSymbol, Validations: []Validation{size(1, 100)}},
		{ID: "companyLogos", Name: "Company Logos", Type: TypeArray, Items: entryArray(CompanyLogoID), Validations: []Validation{size(0, 8)}},
	},
}
