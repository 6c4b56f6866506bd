package contentmodel

const (
	FooterLinkID      = "footerLink"
	FooterLinkGroupID = "footerLinkGroup"
	SocialLinkID      = "socialLink"
	FooterSectionID   = "footerSection"
)

// FooterLink is a single link inside a footer group.
var FooterLink = ContentType{
	Name:         "Footer Link",
	DisplayField: "label",
	Description:  "Individual link item for footer navigation groups",
	Fields: []Field{
		{ID: "label", Name: "Link Label", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 50)}},
		{ID: "url", Name: "Link URL", Type: TypeSymbol, Required: true, Validations: []Validation{matches(anchorLinkPattern)}},
		{ID: "openInNewTab", Name: "Open in New Tab", Type: TypeBoolean},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, Validations: []Validation{rangeOf(0, 100)}},
	},
}

// FooterLinkGroup is a titled column of footer links.
var FooterLinkGroup = ContentType{
	Name:         "Footer Link Group",
	DisplayField: "title",
	Description:  "Grouped collection of footer links (Navigation, Services, Legal, etc.)",
	Fields: []Field{
		{ID: "title", Name: "Group Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 50)}},
		{ID: "links", Name: "Links", Type: TypeArray, Required: true, Items: entryArray(FooterLinkID), Validations: []Validation{size(1, 10)}},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, Validations: []Validation{rangeOf(0, 100)}},
	},
}

// SocialIcons lists the icon identifiers a social link may use.
var SocialIcons = []string{"twitter", "linkedin", "github", "facebook", "instagram", "youtube", "dribbble", "behance"}

// SocialLink is a social media profile link.
var SocialLink = ContentType{
	Name:         "Social Link",
	DisplayField: "platform",
	Description:  "Social media platform link with icon",
	Fields: []Field{
		{ID: "platform", Name: "Platform Name", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 50)}},
		{ID: "url", Name: "Profile URL", Type: TypeSymbol, Required: true, Validations: []Validation{matches(httpsPattern)}},
		{ID: "icon", Name: "Icon Type", Type: TypeSymbol, Required: true, Validations: []Validation{oneOf(SocialIcons...)}},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, Validations: []Validation{rangeOf(0, 100)}},
	},
}

// FooterSection is the footer configuration: company info, link groups and
// social links.
var FooterSection = ContentType{
	Name:         "Footer Section",
	DisplayField: "companyName",
	Description:  "Main footer configuration with company info, links, and settings",
	Fields: []Field{
		{ID: "companyName", Name: "Company Name", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "companyLogo", Name: "Company Logo (Optional)", Type: TypeLink, LinkType: LinkAsset, Validations: imageAsset(32, 200, 32, 200, 200000)},
		{ID: "companyDescription", Name: "Company Description", Type: TypeText, Required: true, Validations: []Validation{size(10, 300)}},
		{ID: "email", Name: "Email Address", Type: TypeSymbol, Required: true, Validations: []Validation{matches(emailPattern)}},
		{ID: "phone", Name: "Phone Number", Type: TypeSymbol, Validations: []Validation{size(0, 50)}},
		{ID: "address", Name: "Physical Address", Type: TypeText, Validations: []Validation{size(0, 200)}},
		{ID: "linkGroups", Name: "Link Groups", Type: TypeArray, Required: true, Items: entryArray(FooterLinkGroupID), Validations: []Validation{size(1, 6)}},
		{ID: "socialLinks", Name: "Social Media Links", Type: TypeArray, Items: entryArray(SocialLinkID), Validations: []Validation{size(0, 8)}},
		{ID: "copyrightText", Name: "Copyright Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 200)}},
		{ID: "showBackToTop", Name: "Show Back to Top Button", Type: TypeBoolean},
		{ID: "backgroundColor", Name: "Background Color Theme", Type: TypeSymbol, Validations: []Validation{oneOf("dark", "light", "blue", "custom")}},
	},
}
