package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDropEvent_IsSellable(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name   string
		status DropStatus
		now    time.Time
		exp    bool
	}{
		{name: "live inside window", status: DropStatusLive, now: start.Add(time.Minute), exp: true},
		{name: "live at start", status: DropStatusLive, now: start, exp: true},
		{name: "live at end", status: DropStatusLive, now: end, exp: false},
		{name: "live before start", status: DropStatusLive, now: start.Add(-time.Second), exp: false},
		{name: "scheduled inside window", status: DropStatusScheduled, now: start.Add(time.Minute), exp: false},
		{name: "ended inside window", status: DropStatusEnded, now: start.Add(time.Minute), exp: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := &DropEvent{Status: test.status, StartsAt: start, EndsAt: end}
			assert.Equal(t, test.exp, d.IsSellable(test.now))
		})
	}

	var missing *DropEvent
	assert.False(t, missing.IsSellable(start))
}

func TestDropEvent_NextStatus(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name   string
		status DropStatus
		now    time.Time
		exp    DropStatus
	}{
		{name: "scheduled stays before start", status: DropStatusScheduled, now: start.Add(-time.Minute), exp: DropStatusScheduled},
		{name: "scheduled goes live", status: DropStatusScheduled, now: start, exp: DropStatusLive},
		{name: "scheduled skips to ended", status: DropStatusScheduled, now: end.Add(time.Minute), exp: DropStatusEnded},
		{name: "live stays live", status: DropStatusLive, now: start.Add(time.Minute), exp: DropStatusLive},
		{name: "live ends", status: DropStatusLive, now: end, exp: DropStatusEnded},
		{name: "ended is final", status: DropStatusEnded, now: start.Add(time.Minute), exp: DropStatusEnded},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := &DropEvent{Status: test.status, StartsAt: start, EndsAt: end}
			assert.Equal(t, test.exp, d.NextStatus(test.now))
		})
	}
}
