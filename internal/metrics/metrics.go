// Package metrics registers the Prometheus instruments exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EntitiesCreated counts successful create operations per entity kind
	// (user, place, amenity, review).
	EntitiesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hbnb_entities_created_total",
		Help: "Number of entities created, labeled by entity kind.",
	}, []string{"entity"})

	// EntitiesDeleted counts successful delete operations per entity kind.
	EntitiesDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hbnb_entities_deleted_total",
		Help: "Number of entities deleted, labeled by entity kind.",
	}, []string{"entity"})

	// Logins counts login attempts by outcome (ok, failed).
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hbnb_logins_total",
		Help: "Number of login attempts, labeled by outcome.",
	}, []string{"outcome"})
)
