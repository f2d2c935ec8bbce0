package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eaglesounds_http_requests_total",
		Help: "Total number of HTTP requests by route and status code",
	}, []string{"route", "code"})

	// Upload metrics
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eaglesounds_uploads_total",
		Help: "Total number of image uploads by storage backend and result",
	}, []string{"backend", "result"})

	UploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eaglesounds_upload_bytes_total",
		Help: "Total number of image bytes written",
	})

	// Contact form metrics
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eaglesounds_contact_submissions_total",
		Help: "Total number of contact form submissions by event type",
	}, []string{"event_type"})

	// Live effect metrics
	LiveSessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eaglesounds_live_sessions",
		Help: "Number of open live effect connections",
	}, []string{"stream"})

	FramesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eaglesounds_smoke_frames_sent_total",
		Help: "Total number of smoke frames pushed to live connections",
	})

	CarouselTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eaglesounds_carousel_transitions_total",
		Help: "Total number of carousel slide transitions on live connections",
	})
)

// Upload results
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)
