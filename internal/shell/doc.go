// Package shell runs toolchain command lines through the host shell and
// reports their lifecycle as events.
//
// The shell used depends on the host family: POSIX hosts run commands with
// "/bin/sh -c", Windows hosts with a non-interactive PowerShell whose
// console window is hidden. [Executor.Execute] never returns an error; every
// failure is converted into an [event.Error] for subscribers.
package shell
