package contentmodel

const (
	CarouselSlideID   = "carouselSlide"
	CarouselSectionID = "carouselSection"
)

// CarouselSlide is a single image slide.
var CarouselSlide = ContentType{
	Name:         "Carousel Slide",
	DisplayField: "title",
	Description:  "Individual slide for carousel sections with image and title",
	Fields: []Field{
		{ID: "title", Name: "Slide Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "image", Name: "Slide Image", Type: TypeLink, LinkType: LinkAsset, Required: true, Validations: imageAsset(800, 2400, 450, 1350, 1500000)},
		{ID: "altText", Name: "Image Alt Text", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 150)}},
		{ID: "description", Name: "Slide Description (Optional)", Type: TypeText, Validations: []Validation{size(0, 200)}},
		{ID: "link", Name: "Slide Link (Optional)", Type: TypeSymbol, Validations: []Validation{matches(anchorLinkPattern)}},
		{ID: "order", Name: "Display Order", Type: TypeInteger, Required: true, Validations: []Validation{rangeOf(0, 100)}},
	},
}

// CarouselSection holds the carousel header and its ordered slides.
var CarouselSection = ContentType{
	Name:         "Carousel Section",
	DisplayField: "title",
	Description:  "Carousel section with header content and collection of slides",
	Fields: []Field{
		{ID: "title", Name: "Section Title", Type: TypeSymbol, Required: true, Validations: []Validation{size(1, 100)}},
		{ID: "subtitle", Name: "Section Subtitle", Type: TypeText, Required: true, Validations: []Validation{size(10, 300)}},
		{ID: "slides", Name: "Carousel Slides", Type: TypeArray, Required: true, Items: entryArray(CarouselSlideID), Validations: []Validation{size(2, 10)}},
		{ID: "autoAdvance", Name: "Auto-advance Slides", Type: TypeBoolean},
		{ID: "autoAdvanceInterval", Name: "Auto-advance Interval (seconds)", Type: TypeInteger, Validations: []Validation{rangeOf(3, 20)}},
		{ID: "showThumbnails", Name: "Show Thumbnail Navigation", Type: TypeBoolean},
		{ID: "showIndicators", Name: "Show Slide Indicators", Type: TypeBoolean},
	},
}
