// Package metrics exposes Prometheus counters for the interaction
// operations and serves them on a dedicated listener.
package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PostsCreated counts successfully persisted posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "social_posts_created_total",
		Help: "Number of posts created.",
	})

	// LikesToggled counts like toggles by target kind (post, profile).
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_likes_toggled_total",
		Help: "Number of like toggles, labeled by target kind.",
	}, []string{"target"})

	// CommentsAdded counts appended comments by target kind.
	CommentsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "social_comments_added_total",
		Help: "Number of comments appended, labeled by target kind.",
	}, []string{"target"})
)

// Serve blocks serving /metrics on the given port.
func Serve(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Metrics listening on :%s", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("Metrics server stopped: %v", err)
	}
}
