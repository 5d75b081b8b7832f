// Package monocle is an event-driven 2D game engine for [Ebitengine].
//
// The engine owns the window, resources, audio and game objects. A game is
// a host loop that pops one event at a time and reacts to it; the engine
// moves and animates objects and draws their sprites between the events.
//
// # Quick start
//
//	e, err := monocle.New(monocle.Config{
//		Video:        monocle.VideoConfig{Title: "My Game", Width: 640, Height: 480},
//		ResourceDirs: []string{"res"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = e.Resources().LoadResmap("game.json")
//	err = e.Run(func(e *monocle.Engine) error {
//		for {
//			ev, err := e.PopEvent()
//			if err != nil {
//				return err
//			}
//			if ev.Kind() == monocle.EventQuit {
//				return nil
//			}
//		}
//	})
//
// # Frames
//
// Every frame yields, in order: a global PreInput followed by one PreInput
// per object, the frame's input events, PrePhysics ticks, PreRender ticks,
// Render ticks and finally PostRender. The very first event is Init. Object
// movement is applied after the last PrePhysics tick and default sprite
// rendering after the last Render tick. Draw calls made while handling
// Render ticks land on top of the previous ones.
//
// # Data
//
// Resource maps and data resources are engine-owned [TaggedValue] trees.
// [Decode] copies a tree into plain Go values (nil, bool, float64, string,
// []any, map[string]any), so nothing returned to the host aliases engine
// memory. [DecodeEvent] does the same for raw event records, resolving
// object tokens through a [Registry].
//
// # Errors
//
// Decoders fail the whole call and wrap one of [ErrMalformedData],
// [ErrDataTooDeep], [ErrUnknownEventKind], [ErrNotImplemented] or
// [ErrUnresolvedObject]; test with errors.Is.
//
// [Ebitengine]: https://ebitengine.org
package monocle
