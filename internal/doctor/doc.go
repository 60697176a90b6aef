// Package doctor provides diagnostic checks for an mpm installation and the
// currently selected project.
//
// Each [Check] inspects one concern and returns a [CheckResult] with a
// [Severity]. A [Runner] executes checks in registration order and
// aggregates them into a [DoctorReport]. Checks that can repair what they
// find also implement [Fixer].
package doctor
