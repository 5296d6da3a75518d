package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type DropStatus string

const (
	DropStatusScheduled DropStatus = "SCHEDULED"
	DropStatusLive      DropStatus = "LIVE"
	DropStatusEnded     DropStatus = "ENDED"
)

type DropProduct struct {
	Name        string
	Brand       string
	Price       decimal.Decimal
	ImageURL    string
	Description string
}

type DropEvent struct {
	ID       int64
	Status   DropStatus
	StartsAt time.Time
	EndsAt   time.Time
	Product  DropProduct
}

// IsSellable reports whether orders may be placed at now.
// The window is half-open: [StartsAt, EndsAt).
func (d *DropEvent) IsSellable(now time.Time) bool {
	if d == nil || d.Status != DropStatusLive {
		return false
	}
	return !now.Before(d.StartsAt) && now.Before(d.EndsAt)
}

// NextStatus returns the status the drop should have at now when
// its stored status lags behind the clock. ENDED never moves.
func (d *DropEvent) NextStatus(now time.Time) DropStatus {
	switch d.Status {
	case DropStatusScheduled, DropStatusLive:
		if !now.Before(d.EndsAt) {
			return DropStatusEnded
		}
		if d.Status == DropStatusScheduled && !now.Before(d.StartsAt) {
			return DropStatusLive
		}
	}
	return d.Status
}

type Stock struct {
	DropEventID  int64
	SKUID        int64
	RemainingQty int
}

// DropView is a drop with the stock figures used for display.
type DropView struct {
	Drop           *DropEvent
	Stocks         []*Stock
	TotalRemaining int
}
