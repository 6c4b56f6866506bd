// Package contentmodel holds the declarative content-type definitions for the
// landing page and the order in which they must be provisioned.
package contentmodel

// Registry returns every content type in provisioning order. A type is always
// listed after the types it links to.
func Registry() []ModelDefinition {
	return []ModelDefinition{
		{ID: DropdownItemID, Model: DropdownItem},
		{ID: MenuItemID, Model: MenuItem, Dependencies: []string{DropdownItemID}},
		{ID: NavigationID, Model: Navigation, Dependencies: []string{MenuItemID}},

		{ID: CtaButtonID, Model: CtaButton},
		{ID: CompanyLogoID, Model: CompanyLogo},
		{ID: HeroSectionID, Model: HeroSection, Dependencies: []string{CtaButtonID, CompanyLogoID}},

		{ID: CarouselSlideID, Model: CarouselSlide},
		{ID: CarouselSectionID, Model: CarouselSection, Dependencies: []string{CarouselSlideID}},

		{ID: ServiceItemID, Model: ServiceItem},
		{ID: ServicesSectionID, Model: ServicesSection, Dependencies: []string{ServiceItemID}},

		{ID: FooterLinkID, Model: FooterLink},
		{ID: FooterLinkGroupID, Model: FooterLinkGroup, Dependencies: []string{FooterLinkID}},
		{ID: SocialLinkID, Model: SocialLink},
		{ID: FooterSectionID, Model: FooterSection, Dependencies: []string{FooterLinkGroupID, SocialLinkID}},
	}
}

// Lookup returns the content type registered under id.
func Lookup(id string) (ContentType, bool) {
	for _, d := range Registry() {
		if d.ID == id {
			return d.Model, true
		}
	}
	return ContentType{}, false
}

// IDs returns the registered ids in provisioning order.
func IDs() []string {
	defs := Registry()
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}
