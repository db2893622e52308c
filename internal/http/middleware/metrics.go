package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/animalloo/animalloo-backend/internal/observability"
)

// Probe and scrape routes stay out of the API histograms.
var unobservedRoutes = map[string]struct{}{
	"/healthcheck": {},
	"/readyz":      {},
	"/metrics":     {},
}

// Metrics records request count, latency and in-flight requests per route
// template. Requests that match no route are folded into "unmatched".
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if _, skip := unobservedRoutes[c.FullPath()]; skip {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
