package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Delivery outcomes are counted so operators can detect channel failures even
// though they never propagate to the triggering operation.
var (
	notificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techstore_notifications_sent_total",
			Help: "Total number of notifications delivered, by channel",
		},
		[]string{"channel"},
	)

	notificationsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "techstore_notifications_failed_total",
			Help: "Total number of notification deliveries that failed, by channel",
		},
		[]string{"channel"},
	)

	notificationsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "techstore_notifications_dropped_total",
			Help: "Total number of notifications dropped because the queue was full",
		},
	)
)
