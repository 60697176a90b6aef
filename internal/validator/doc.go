// Package validator collects and reports findings about a project file.
//
// A [Result] gathers [Issue] values of three severities. Errors mean the
// project cannot be handled as an application, warnings flag declarations
// that are ignored or shadowed, and info notes are purely descriptive.
//
//	result := validator.NewResult(path)
//	result.AddError("UseMaui", "must be true", value)
//	if result.HasErrors() {
//		// the project is not usable
//	}
//
// [Reporter] renders a Result as colored text or JSON.
package validator
