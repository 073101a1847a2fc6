package session

import (
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
)

// MetricsSubscriber counts applied changes per kind.
func MetricsSubscriber(metricsManager *metrics.Manager) Subscriber {
	return func(c Change) {
		metricsManager.CounterStateChanges.WithLabelValues(string(c.Kind)).Inc()
	}
}

func LogSubscriber() Subscriber {
	return func(c Change) {
		log.WithFields(log.Fields{
			"user_id":    c.Snapshot.UserID,
			"kind":       c.Kind,
			"goal_grams": c.Snapshot.Goal.DailyGrams,
			"consumed":   c.Snapshot.Goal.Consumed,
		}).Debug("session state changed")
	}
}
