package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/landingpro/landing/backend/go-services/internal/carousel"
	"github.com/landingpro/landing/backend/go-services/internal/content"
	"github.com/landingpro/landing/backend/go-services/internal/render"
	"github.com/landingpro/landing/backend/go-services/pkg/logger"
	"github.com/landingpro/landing/backend/go-services/pkg/metrics"
	"github.com/landingpro/landing/backend/go-services/pkg/middleware"
)

// ContentHandler serves landing page sections as JSON and the landing page
// itself as HTML.
type ContentHandler struct {
	fetcher  *content.Fetcher
	renderer *render.Renderer
	// Clock drives the carousel stream; nil means wall clock.
	Clock carousel.Clock
	now   func() time.Time
}

func NewContentHandler(f *content.Fetcher, r *render.Renderer) *ContentHandler {
	return &ContentHandler{fetcher: f, renderer: r, now: time.Now}
}

// RegisterContentRoutes registers the section API and the landing page on r.
func RegisterContentRoutes(r gin.IRoutes, h *ContentHandler) {
	r.GET("/api/navigation", h.Navigation)
	r.GET("/api/hero-section", h.HeroSection)
	r.GET("/api/carousel-section", h.CarouselSection)
	r.GET("/api/carousel-section/stream", h.CarouselStream)
	r.GET("/api/services-section", h.ServicesSection)
	r.GET("/api/footer-section", h.FooterSection)
	r.GET("/", h.Page)
}

func options(c *gin.Context) content.Options {
	return content.Options{Preview: middleware.IsPreview(c)}
}

// respond writes res with 200 on success. On failure it writes 500 with
// either the fetch result itself (msg empty) or a fixed message.
func respond[T any](c *gin.Context, res content.Result[T], msg string) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	if msg == "" {
		c.JSON(http.StatusInternalServerError, res)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
}

// Navigation returns the newest navigation entry with its menu sorted.
func (h *ContentHandler) Navigation(c *gin.Context) {
	respond(c, h.fetcher.FetchNavigation(c.Request.Context(), options(c)), "")
}

func (h *ContentHandler) HeroSection(c *gin.Context) {
	respond(c, h.fetcher.FetchHeroSection(c.Request.Context(), options(c)), "Failed to fetch hero section data")
}

func (h *ContentHandler) CarouselSection(c *gin.Context) {
	respond(c, h.fetcher.FetchCarouselSection(c.Request.Context(), options(c)), "Failed to fetch carousel section data")
}

func (h *ContentHandler) ServicesSection(c *gin.Context) {
	respond(c, h.fetcher.FetchServicesSection(c.Request.Context(), options(c)), "Failed to fetch services section data")
}

func (h *ContentHandler) FooterSection(c *gin.Context) {
	respond(c, h.fetcher.FetchFooterSection(c.Request.Context(), options(c)), "Failed to fetch footer section data")
}

// CarouselStream pushes the current slide index as server-sent events:
// one "slide" event immediately, then one per auto-advance tick until the
// client goes away. With auto-advance off or a single slide only the
// initial event is sent.
func (h *ContentHandler) CarouselStream(c *gin.Context) {
	ctx := c.Request.Context()
	view := render.Carousel(render.FromResult(h.fetcher.FetchCarouselSection(ctx, options(c))))
	enabled := view.AutoAdvance
	seconds := int(view.IntervalMS / 1000)
	cfg := carousel.Config{AutoAdvance: &enabled, Interval: &seconds}

	metrics.CarouselStreams.Inc()
	defer metrics.CarouselStreams.Dec()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	send := func(index int) {
		c.SSEvent("slide", gin.H{"index": index})
		c.Writer.Flush()
	}
	send(0)
	logger.Debugf("carousel stream opened: slides=%d auto=%v interval=%dms", len(view.Slides), enabled, view.IntervalMS)
	carousel.Run(ctx, cfg, len(view.Slides), h.Clock, send)
	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Debugf("carousel stream closed by client")
	}
}

// Page renders the landing page. Sections that fail to load fall back to
// built-in content, so the page itself is always served.
func (h *ContentHandler) Page(c *gin.Context) {
	home := h.fetcher.FetchHomeSections(c.Request.Context(), options(c))
	page := render.BuildPage(home, h.now())
	page.SetPreview(middleware.IsPreview(c))

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page); err != nil {
		logger.Errorf("render landing page: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
