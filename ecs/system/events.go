package system

import (
	"github.com/milk9111/cubehop/ecs"
	"github.com/rs/zerolog/log"
)

// EventLogSystem drains the tick's events, logging each and handing it to
// an optional listener. It runs last.
type EventLogSystem struct {
	listener func(ecs.Event)
}

func NewEventLogSystem(listener func(ecs.Event)) *EventLogSystem {
	return &EventLogSystem{listener: listener}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if mv, ok := evt.Data.(ecs.MovementEvent); ok {
			log.Debug().Str("event", evt.Type).Str("entity", mv.Entity.String()).Int("jumps_remaining", mv.JumpsRemaining).Msg("movement event")
		}
		if s.listener != nil {
			s.listener(evt)
		}
	}
}
