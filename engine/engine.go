package engine

import "github.com/dfb159/scythe-bot/metrics"

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
