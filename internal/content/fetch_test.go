package content

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingpro/landing/backend/go-services/internal/cms"
	"github.com/landingpro/landing/backend/go-services/internal/contentmodel"
	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
)

func demoMemory(t *testing.T) *cms.Memory {
	t.Helper()
	m := cms.NewMemory()
	ctx := context.Background()
	for _, d := range contentmodel.Registry() {
		ct, err := m.CreateContentTypeWithID(ctx, d.ID, d.Model)
		require.NoError(t, err)
		_, err = m.PublishContentType(ctx, ct)
		require.NoError(t, err)
	}
	fx, err := cms.DemoFixtures()
	require.NoError(t, err)
	require.NoError(t, m.Load(fx))
	return m
}

func TestSingletonsWithoutClient(t *testing.T) {
	before := testutil.ToFloat64(metrics.CMSRequests.WithLabelValues(contentmodel.HeroSectionID, "unavailable"))

	for name, f := range map[string]*Fetcher{
		"nil reader":          NewFetcher(nil, nil),
		"typed nil delivery":  NewFetcher(cms.NewDeliveryClient(cms.DeliveryConfig{}), nil),
		"nil fetcher pointer": nil,
	} {
		t.Run(name, func(t *testing.T) {
			res := f.FetchHeroSection(context.Background(), Options{})
			assert.False(t, res.Success)
			assert.Nil(t, res.Data)
			assert.Equal(t, "Contentful client not available", res.Error)
			assert.False(t, f.Configured())
		})
	}

	after := testutil.ToFloat64(metrics.CMSRequests.WithLabelValues(contentmodel.HeroSectionID, "unavailable"))
	assert.Equal(t, 3.0, after-before)
}

func TestListWithoutClientReturnsEmptyData(t *testing.T) {
	res := NewFetcher(nil, nil).FetchEntriesByType(context.Background(), contentmodel.CarouselSlideID, Options{})
	assert.False(t, res.Success)
	require.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestPreviewUsesPreviewReader(t *testing.T) {
	f := NewFetcher(demoMemory(t), nil)
	assert.True(t, f.Configured())

	res := f.FetchNavigation(context.Background(), Options{Preview: true})
	assert.False(t, res.Success)
	assert.Equal(t, "Contentful client not available", res.Error)

	res = f.FetchNavigation(context.Background(), Options{})
	require.True(t, res.Success, res.Error)
	require.NotNil(t, res.Data)
}

func TestFetchNavigationSortsMenu(t *testing.T) {
	f := NewFetcher(demoMemory(t), nil)
	res := f.FetchNavigation(context.Background(), Options{})
	require.True(t, res.Success, res.Error)
	nav := res.Data

	assert.Equal(t, "LandingPro", nav.Fields.Title)
	require.NotNil(t, nav.Fields.Logo)
	require.NotNil(t, nav.Fields.Logo.Fields.File)

	var labels []string
	for _, m := range nav.Fields.MenuItems {
		labels = append(labels, m.Fields.Label)
	}
	assert.Equal(t, []string{"Home", "About", "Services"}, labels)

	var dropdown []string
	for _, d := range nav.Fields.MenuItems[2].Fields.DropdownItems {
		dropdown = append(dropdown, d.Fields.Label)
	}
	assert.Equal(t, []string{"Web Development", "Mobile Apps", "Consulting", "Support"}, dropdown)
}

func TestFetchFooterSortsGroupsAndLinks(t *testing.T) {
	f := NewFetcher(demoMemory(t), nil)
	res := f.FetchFooterSection(context.Background(), Options{})
	require.True(t, res.Success, res.Error)

	var groups []string
	for _, g := range res.Data.Fields.LinkGroups {
		groups = append(groups, g.Fields.Title)
	}
	assert.Equal(t, []string{"Navigation", "Services", "Legal"}, groups)
	assert.Equal(t, "Privacy Policy", res.Data.Fields.LinkGroups[2].Fields.Links[0].Fields.Label)
	require.Len(t, res.Data.Fields.SocialLinks, 4)
	assert.Equal(t, "twitter", res.Data.Fields.SocialLinks[0].Fields.Icon)
}

func TestFetchHomeSections(t *testing.T) {
	f := NewFetcher(demoMemory(t), nil)
	home := f.FetchHomeSections(context.Background(), Options{})

	require.True(t, home.Hero.Success)
	require.NotNil(t, home.Hero.Data.Fields.PrimaryCta)
	assert.Equal(t, "Get Started Today", home.Hero.Data.Fields.PrimaryCta.Fields.Text)
	assert.Len(t, home.Hero.Data.Fields.CompanyLogos, 4)

	require.True(t, home.Carousel.Success)
	assert.Len(t, home.Carousel.Data.Fields.Slides, 5)
	require.NotNil(t, home.Carousel.Data.Fields.AutoAdvanceInterval)
	assert.Equal(t, 5, *home.Carousel.Data.Fields.AutoAdvanceInterval)

	require.True(t, home.Services.Success)
	require.Len(t, home.Services.Data.Fields.Services, 4)
	assert.NotNil(t, home.Services.Data.Fields.Services[0].Fields.Content)

	assert.True(t, home.Navigation.Success)
	assert.True(t, home.Footer.Success)
}

func TestFetchAPIErrorIsAbsorbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"sys":{"type":"Error","id":"ServerError"},"message":"Internal server error"}`)
	}))
	defer srv.Close()

	before := testutil.ToFloat64(metrics.CMSRequests.WithLabelValues(contentmodel.ServicesSectionID, "error"))
	client := cms.NewDeliveryClient(cms.DeliveryConfig{SpaceID: "s", AccessToken: "t", Host: srv.URL})
	res := NewFetcher(client, nil).FetchServicesSection(context.Background(), Options{})

	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Contains(t, res.Error, "Internal server error")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CMSRequests.WithLabelValues(contentmodel.ServicesSectionID, "error"))-before)
}

func TestSingletonWithNoEntries(t *testing.T) {
	m := cms.NewMemory()
	ctx := context.Background()
	ct, err := m.CreateContentTypeWithID(ctx, contentmodel.HeroSectionID, contentmodel.HeroSection)
	require.NoError(t, err)
	_, err = m.PublishContentType(ctx, ct)
	require.NoError(t, err)

	res := NewFetcher(m, nil).FetchHeroSection(ctx, Options{})
	assert.True(t, res.Success)
	assert.Nil(t, res.Data)
}

func TestSortByOrderIsStable(t *testing.T) {
	type item struct {
		name  string
		order int
	}
	items := []item{{"c", 2}, {"missing-1", 0}, {"a", 1}, {"b", 1}, {"missing-2", 0}}
	SortByOrder(items, func(i item) int { return i.order })

	var names []string
	for _, i := range items {
		names = append(names, i.name)
	}
	assert.Equal(t, []string{"missing-1", "missing-2", "a", "b", "c"}, names)
}
