package render

import (
	"fmt"

	"github.com/landingpro/landing/backend/go-services/internal/richtext"
)

// Built-in copy shown when a section cannot be loaded from the CMS.

const (
	brandName        = "LandingPro"
	defaultCtaText   = "Contact Us"
	defaultCtaLink   = "/"
	heroFallbackAlt  = "Digital technology background"
	heroFallbackBase = "https://images.unsplash.com/photo-1451187580459-43490279c0fa?ixlib=rb-4.0.3&fit=crop"
)

func placeholderNav() NavView {
	services := []LinkView{
		{Label: "Web Development", Href: "/"},
		{Label: "Mobile Apps", Href: "/"},
		{Label: "Consulting", Href: "/"},
		{Label: "Support", Href: "/"},
	}
	return NavView{
		Brand: brandName,
		Items: []NavItemView{
			{Label: "Home", Href: "/"},
			{Label: "About", Href: "/"},
			{Label: "Services", Href: "/", Dropdown: services},
		},
		CtaText: defaultCtaText,
		CtaLink: defaultCtaLink,
	}
}

func heroFallbackImages() (mobile, desktop ImageView) {
	mobile = ImageView{URL: ImageURL(heroFallbackBase, 800, 75), Alt: heroFallbackAlt}
	desktop = ImageView{URL: ImageURL(heroFallbackBase, 2072, 85), Alt: heroFallbackAlt}
	return mobile, desktop
}

func placeholderHero() HeroView {
	mobile, desktop := heroFallbackImages()
	companies := make([]CompanyView, 0, 4)
	for i := 1; i <= 4; i++ {
		companies = append(companies, CompanyView{Name: fmt.Sprintf("Company %d", i)})
	}
	return HeroView{
		Title:             "Transform Your",
		HighlightedTitle:  "Digital Presence",
		SubtitleMobile:    "We create exceptional web experiences that drive results.",
		SubtitleDesktop:   "We create exceptional web experiences that drive results. From concept to launch, we build modern, responsive websites that engage your audience and grow your business.",
		BackgroundMobile:  mobile,
		BackgroundDesktop: desktop,
		Primary:           &ButtonView{Text: "Get Started Today", Href: "/", Style: "primary"},
		Secondary:         &ButtonView{Text: "View Our Work", Href: "/", Style: "outline"},
		ShowTrust:         true,
		TrustTitle:        "Trusted by innovative companies worldwide",
		Companies:         companies,
	}
}

var placeholderSlides = []struct{ id, alt, title string }{
	{"photo-1460925895917-afdab827c52f", "Business Analytics Dashboard", "Data Visualization"},
	{"photo-1551288049-bebda4e38f71", "Modern Office Workspace", "Workspace Design"},
	{"photo-1518770660439-4636190af475", "Technology Innovation", "Tech Innovation"},
	{"photo-1504868584819-f8e8b4b6d7e3", "Mobile App Development", "Mobile Development"},
	{"photo-1557804506-669a67965ba0", "Web Development", "Web Solutions"},
}

func unsplash(id string, width, quality int) string {
	return ImageURL("https://images.unsplash.com/"+id+"?ixlib=rb-4.0.3&fit=crop", width, quality)
}

func placeholderCarousel() CarouselView {
	slides := make([]SlideView, 0, len(placeholderSlides))
	for _, s := range placeholderSlides {
		slides = append(slides, SlideView{
			Title: s.title,
			Image: ImageView{URL: unsplash(s.id, 1200, 80), Alt: s.alt},
		})
	}
	return CarouselView{
		Title:          "Our Work",
		Subtitle:       "Explore our portfolio of successful projects and digital solutions.",
		Slides:         slides,
		AutoAdvance:    true,
		IntervalMS:     5000,
		ShowThumbnails: true,
		ShowIndicators: true,
	}
}

var placeholderServices = []struct{ title, body, image, alt string }{
	{
		"Web Development",
		"We create **modern, responsive websites** that deliver exceptional user experiences. Our team specializes in *cutting-edge technologies* like React, Next.js, and TypeScript. From <u>custom web applications</u> to e-commerce platforms, we build digital solutions that **drive business growth** and engage your audience effectively.",
		"photo-1498050108023-c5249f4df085",
		"Web Development - Modern coding workspace",
	},
	{
		"Mobile App Development",
		"Transform your ideas into **powerful mobile applications** for iOS and Android. Our *cross-platform development* approach ensures your app reaches the widest audience possible. We focus on <u>intuitive user interfaces</u> and **seamless performance** to create apps that users love and businesses rely on.",
		"photo-1512941937669-90a1b58e7e9c",
		"Mobile App Development - Smartphone and tablet apps",
	},
	{
		"UI/UX Design",
		"Create **stunning visual experiences** that captivate your users from the first interaction. Our design process combines *user research* with creative innovation to deliver interfaces that are both <u>beautiful and functional</u>. We ensure every pixel serves a purpose in **enhancing user satisfaction** and driving conversions.",
		"photo-1561070791-2526d30994b5",
		"UI/UX Design - Creative design process",
	},
	{
		"Digital Strategy & Consulting",
		"Navigate the digital landscape with **expert guidance** tailored to your business goals. Our consultants provide *strategic insights* on technology choices, digital transformation, and <u>growth optimization</u>. We help you make **informed decisions** that accelerate your success in the digital world.",
		"photo-1552664730-d307ca884978",
		"Digital Strategy - Business consultation meeting",
	},
}

func placeholderServicesView() ServicesView {
	items := make([]ServiceView, 0, len(placeholderServices))
	for i, s := range placeholderServices {
		items = append(items, ServiceView{
			Title:      s.title,
			Body:       richtext.Markdown(s.body),
			Image:      ImageView{URL: unsplash(s.image, 2072, 80), Alt: s.alt},
			ImageRight: imageRight(LayoutAlternating, i),
		})
	}
	return ServicesView{
		Title:      "Our Services",
		Subtitle:   "Comprehensive digital solutions tailored to your business needs",
		Background: "gray",
		Items:      items,
	}
}

func placeholderFooter(year int) FooterView {
	group := func(title string, labels ...string) FooterGroupView {
		g := FooterGroupView{Title: title}
		for _, l := range labels {
			g.Links = append(g.Links, LinkView{Label: l, Href: "/"})
		}
		return g
	}
	social := make([]SocialView, 0, 4)
	for _, icon := range []string{"twitter", "linkedin", "github", "facebook"} {
		social = append(social, SocialView{Label: socialLabel("", icon), Href: "/", Icon: icon})
	}
	return FooterView{
		CompanyName: brandName,
		Description: "LandingPro Private Limited - Creating exceptional digital experiences with modern web technologies.",
		Email:       "hello@landingpro.com",
		Phone:       "+1 (555) 123-4567",
		Address:     "123 Business St, Tech City, TC 12345",
		Groups: []FooterGroupView{
			group("Navigation", "Home", "About", "Contact"),
			group("Services", "Web Development", "Mobile Apps", "Consulting", "Support"),
			group("Legal", "Privacy Policy", "Terms of Service", "Cookie Policy", "Disclaimer"),
		},
		Social:        social,
		Copyright:     copyright(year, "LandingPro Private Limited. All rights reserved."),
		ShowBackToTop: true,
		Background:    "dark",
	}
}
