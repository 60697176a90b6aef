// Package project tracks an application project on disk and orchestrates
// toolchain operations against it.
//
// A [Manager] remembers the project root and its descriptor, derives a
// [State] from them, and gates each operation on that state. Operations that
// are not applicable in the current state return without effect and without
// emitting anything. Failures of an attempted operation are reported as
// [event.Error] notifications on the manager's bus, never as returned errors.
//
// Basic usage:
//
//	bus := event.NewBus()
//	exec := shell.NewExecutor(shell.HostFamily(), bus)
//	m := project.NewManager(bus, exec, project.DefaultCommands())
//	m.SetProjectDirectory(ctx, "./MyApp")
//	m.Create(ctx)
//	m.Run(ctx, "net8.0-android")
//
// A Manager is not safe for concurrent use.
package project
