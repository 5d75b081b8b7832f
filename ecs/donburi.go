package ecs

import (
	"github.com/phanxgames/monocle"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType carries monocle events through a Donburi world. Object events
// hold the *monocle.GameObject the engine registry resolved for the token.
var EventType = events.NewEventType[monocle.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink for Engine.SetEventSink. The engine
// calls it only after PopEvent has decoded an event without error, so
// unresolved object tokens never reach the world. Events queue on EventType
// until EventType.ProcessEvents or events.ProcessAllEvents runs.
func NewDonburiSink(world donburi.World) monocle.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(ev monocle.Event) {
	EventType.Publish(s.world, ev)
}
