// Package ecs provides ECS adapters for the monocle event stream.
//
// The primary adapter is [NewDonburiSink], which republishes every decoded
// frame event into a [Donburi] world. Subscribe to [EventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
