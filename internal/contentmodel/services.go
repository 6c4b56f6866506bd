package contentmodel

const (
	ServiceItemID     = "serviceItem"
	ServicesSectionID = "servicesSection"
)

// ServiceItem is one service with rich-text copy and an image.
var ServiceItem = ContentType{
	Name:         "Service Item",
	DisplayField: "title",
	Description:  "Individual service item with title, rich content, and image",
	Fields: []Field{
		{ID: "title", Name: "Service Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "content", Name: "Service Description", Type: TypeRichText, Required: true, Validations: []Validation{size(50, 1000)}},
		{ID: "image", Name: "Service Image", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(800, 2400, 600, 1800, 1500000)},
		{ID: "imageAlt", Name: "Image Alt Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 150)}},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, Validations: []Validation{rangeOf(0, 100)}},
		{ID: "featured", Name: "Featured Service", Type: TypeBoolean},
	},
}

// ServicesSection holds the services header and its items.
var ServicesSection = ContentType{
	Name:         "Services Section",
	DisplayField: "title",
	Description:  "Services section with header content and collection of service items",
	Fields: []Field{
		{ID: "title", Name: "Section Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "subtitle", Name: "Section Subtitle", Type: TypeText, Required: true, Validations: []Validation{size(10, 300)}},
		{ID: "services", Name: "Service Items", Type: TypeArray, Required: true, Items: entryArray(ServiceItemID), Validations: []Validation{size(1, 12)}},
		{ID: "backgroundColor", Name: "Background Color", Type: TypeSymbol, Validations: []Validation{oneOf("gray", "white", "blue", "custom")}},
		{ID: "layout", Name: "Layout Style", Type: TypeSymbol, Validations: []Validation{oneOf("alternating", "uniform-left", "uniform-right")}},
	},
}
