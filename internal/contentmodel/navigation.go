package contentmodel

const (
	DropdownItemID = "dropdownItem"
	MenuItemID     = "menuItem"
	NavigationID   = "navigation"
)

// DropdownItem is an individual item within a dropdown menu.
var DropdownItem = ContentType{
	Name:         "Dropdown Item",
	DisplayField: "label",
	Description:  "Individual items within dropdown menus",
	Fields: []Field{
		{ID: "label", Name: "Label", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 50)}},
		{ID: "link", Name: "Link", Type: TypeSymbol, Required: true, Validations: []Validation{matches(linkPattern)}},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, DefaultValue: map[string]any{DefaultLocale: 1}},
	},
}

// MenuItem is a navigation entry that is either a direct link or a dropdown.
var MenuItem = ContentType{
	Name:         "Menu Item",
	DisplayField: "label",
	Description:  "Navigation menu items that can be direct links or dropdown menus",
	Fields: []Field{
		{ID: "label", Name: "Label", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 30)}},
		{ID: "type", Name: "Menu Type", Type: TypeSymbol, Required: true, Validations: []Validation{oneOf("direct", "dropdown")}},
		{ID: "link", Name: "Direct Link", Type: TypeSymbol, Validations: []Validation{matches(linkPattern)}},
		{ID: "dropdownItems", Name: "Dropdown Items", Type: TypeArray, Items: entryArray(DropdownItemID)},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, DefaultValue: map[string]any{DefaultLocale: 1}},
	},
}

// Navigation is the main website navigation configuration.
var Navigation = ContentType{
	Name:         "Navigation",
	DisplayField: "title",
	Description:  "Main website navigation configuration",
	Fields: []Field{
		{ID: "title", Name: "Navigation Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "logo", Name: "Logo Image", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(120, 400, 40, 120, 500000)},
		{ID: "menuItems", Name: "Menu Items", Type: TypeArray, Required: true, Items: entryArray(MenuItemID), Validations: []Validation{size(1, 8)}},
		{ID: "ctaText", Name: "CTA Button Text", Type: TypeSymbol, Validations: []Validation{size(1, 20)}},
		{ID: "ctaLink", Name: "CTA Button Link", Type: TypeSymbol, Validations: []Validation{matches(linkPattern)}},
	},
}
