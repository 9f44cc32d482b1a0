package system

import (
	"github.com/milk9111/cubehop/config"
	"github.com/milk9111/cubehop/ecs"
)

// Clock is the elapsed-time collaborator.
type Clock interface {
	// Delta is the seconds elapsed since the previous tick.
	Delta() float64
}

// FixedClock reports the same delta every tick.
type FixedClock float64

func (c FixedClock) Delta() float64 {
	return float64(c)
}

// TimeSystem publishes the tick's delta and the configured time scale.
type TimeSystem struct {
	clock  Clock
	config *config.Provider
}

func NewTimeSystem(clock Clock, cfg *config.Provider) *TimeSystem {
	return &TimeSystem{clock: clock, config: cfg}
}

func (s *TimeSystem) Update(w *ecs.World) {
	if w == nil || s.clock == nil {
		return
	}
	scale := 1.0
	if s.config != nil {
		scale = s.config.Current().Physics.TimeScale
	}
	w.SetTime(ecs.Time{Delta: s.clock.Delta(), Scale: scale})
}
