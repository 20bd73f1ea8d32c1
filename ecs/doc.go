// Package ecs provides ECS adapters for tilepaint's editor events.
//
// The primary adapter is [NewDonburiSink], which bridges editor events
// (selection, painting, rotation, flipping, saving) into a [Donburi] world as
// typed events. Subscribe to [EditorEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	editor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
