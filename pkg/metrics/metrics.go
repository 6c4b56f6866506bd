package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	// CMSRequests counts content fetches by content type and outcome
	// (ok, error, unavailable).
	CMSRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "cms_requests_total", Help: "Content fetches by content type and outcome."},
		[]string{"content_type", "outcome"},
	)
	CMSRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "landing", Name: "cms_api_request_duration_seconds", Help: "Latency of CMS API calls.", Buckets: prometheus.DefBuckets},
		[]string{"api", "status"},
	)

	ProvisionActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "landing", Name: "provision_actions_total", Help: "Content types created or skipped by provisioning."},
		[]string{"action"},
	)

	CarouselStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "landing", Name: "carousel_streams_active", Help: "Open carousel event streams."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(CMSRequests)
	reg.MustRegister(CMSRequestDuration)
	reg.MustRegister(ProvisionActions)
	reg.MustRegister(CarouselStreams)
}
