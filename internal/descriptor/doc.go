// Package descriptor reads the XML project descriptor (*.csproj) of an
// application project.
//
// Only the handful of properties mpm acts on are interpreted: UseMaui and
// OutputType decide whether the project is an application, and the
// TargetFrameworks elements list the platforms it can be built for. The
// document is otherwise kept as an untyped element tree so unknown markup
// never causes a load failure.
package descriptor
