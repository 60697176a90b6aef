// Package platform names the application target platforms mpm understands
// and classifies target framework identifiers into them.
//
// A target framework identifier is a string such as "net8.0-android" or
// "net8.0-windows10.0.19041.0" declared in a project descriptor. [Classify]
// maps it to one of the canonical names Android, iOS, MacCatalyst, Windows
// or Tizen; [Map] collects the result for a whole descriptor.
//
//	m := platform.Map{}
//	m.Add("net8.0-android")
//	m.Add("net8.0-ios")
//	for _, e := range m.Entries() {
//	    fmt.Printf("%s -> %s\n", e.Name, e.Identifier)
//	}
//
// [DetectHost] reports which platforms can be built on the current host.
//
// All functions in this package are safe for concurrent use.
package platform
