package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vending_commands_total",
		Help: "Commands processed, by kind.",
	}, []string{"command"})

	VendsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_vends_total",
		Help: "Successful purchases.",
	})

	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vending_rejections_total",
		Help: "Rejected purchases, by reason.",
	}, []string{"reason"})

	CoinsDispensed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vending_coins_dispensed_total",
		Help: "Coins ejected as change or refunds.",
	})
)
