package sharding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	shardRoutesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shard_routes_total",
			Help: "Total number of shard routing decisions",
		},
		[]string{"shard_id", "source"},
	)

	shardUnknownFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shard_unknown_fallbacks_total",
			Help: "Total number of unresolvable country inputs routed to the default shard",
		},
	)

	shardMigrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shard_migrations_total",
			Help: "Total number of emitted user shard migrations",
		},
		[]string{"from_shard", "to_shard"},
	)

	shardMigrationEmitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shard_migration_emit_errors_total",
			Help: "Total number of migration intents that failed to publish",
		},
	)
)
