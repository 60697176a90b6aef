package platform

import "strings"

// Canonical target platform names.
const (
	Android     = "Android"
	IOS         = "iOS"
	MacCatalyst = "MacCatalyst"
	Windows     = "Windows"
	Tizen       = "Tizen"
)

// RuntimeMarker must appear in an identifier for it to be classified at all.
const RuntimeMarker = "net"

// classifiers are tested in order; the first matching substring wins.
var classifiers = []struct {
	marker string
	name   string
}{
	{"android", Android},
	{"ios", IOS},
	{"maccatalyst", MacCatalyst},
	{"windows", Windows},
	{"tizen", Tizen},
}

// Names returns every canonical platform name in display order.
func Names() []string {
	names := make([]string, len(classifiers))
	for i, c := range classifiers {
		names[i] = c.name
	}
	return names
}

// Valid reports whether name is a canonical platform name.
func Valid(name string) bool {
	for _, c := range classifiers {
		if c.name == name {
			return true
		}
	}
	return false
}

// Classify returns the canonical platform for a target framework identifier.
// Identifiers without the runtime marker, or matching no platform, are
// rejected.
func Classify(identifier string) (string, bool) {
	if !strings.Contains(identifier, RuntimeMarker) {
		return "", false
	}
	for _, c := range classifiers {
		if strings.Contains(identifier, c.marker) {
			return c.name, true
		}
	}
	return "", false
}

// Map maps canonical platform names to the identifier declared for them.
type Map map[string]string

// Add classifies identifier and stores it, replacing any identifier
// already recorded for the same platform. It reports whether the
// identifier was kept.
func (m Map) Add(identifier string) bool {
	name, ok := Classify(identifier)
	if !ok {
		return false
	}
	m[name] = identifier
	return true
}

// Entry is one platform/identifier pair of a Map.
type Entry struct {
	Name       string `json:"platform" yaml:"platform" toml:"platform"`
	Identifier string `json:"framework" yaml:"framework" toml:"framework"`
}

// Entries returns the map's contents in canonical display order.
func (m Map) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for _, c := range classifiers {
		if id, ok := m[c.name]; ok {
			entries = append(entries, Entry{Name: c.name, Identifier: id})
		}
	}
	return entries
}

// Identifiers returns the declared identifiers in canonical display order.
func (m Map) Identifiers() []string {
	entries := m.Entries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Identifier
	}
	return ids
}
