package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts successful simulator writes.
type Metrics struct {
	UsersRegistered prometheus.Counter
	MessagesPosted  prometheus.Counter
	FollowChanges   *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "minitwit",
			Name:      "users_registered_total",
			Help:      "Number of registered users.",
		}),
		MessagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "minitwit",
			Name:      "messages_posted_total",
			Help:      "Number of posted messages.",
		}),
		FollowChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "minitwit",
			Name:      "follow_changes_total",
			Help:      "Number of follow and unfollow operations.",
		}, []string{"action"}),
	}

	reg.MustRegister(m.UsersRegistered, m.MessagesPosted, m.FollowChanges)
	return m
}
