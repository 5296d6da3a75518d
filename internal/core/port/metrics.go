package port

import "time"

type Metrics interface {
	OrderOutcome(op string, outcome string)
	StockReleased(reason string)
	SweepFinished(expired int, took time.Duration)
}
