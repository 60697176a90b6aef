package descriptor

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/platform"
	"github.com/thoreinstein/mpm/pkg/fileutil"
)

// Extension is the file extension of a project descriptor.
const Extension = ".csproj"

// Element names read from the descriptor.
const (
	ElementUseMaui          = "UseMaui"
	ElementOutputType       = "OutputType"
	ElementTargetFrameworks = "TargetFrameworks"
	AttrCondition           = "Condition"
)

// node is a generic XML element.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

func (n *node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// walk visits n and its descendants in document order.
func (n *node) walk(fn func(*node)) {
	fn(n)
	for i := range n.Children {
		n.Children[i].walk(fn)
	}
}

// Descriptor is a parsed project descriptor.
type Descriptor struct {
	Path string
	root node
}

// Find returns the descriptor inside dir: the lexicographically first
// regular file with the descriptor extension. It returns ErrNotFound when
// the directory holds none.
func Find(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "reading project directory %s", dir)
	}

	// os.ReadDir returns entries sorted by filename.
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		return filepath.Join(dir, e.Name()), nil
	}

	return "", errors.Wrapf(errors.ErrNotFound, "no %s file in %s", Extension, dir)
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Descriptor, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading descriptor %s", path)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing descriptor %s", path)
	}
	d.Path = path
	return d, nil
}

// Parse parses descriptor content.
func Parse(data []byte) (*Descriptor, error) {
	d := &Descriptor{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&d.root); err != nil {
		return nil, errors.Wrap(err, "decoding XML")
	}
	return d, nil
}

// Value returns the trimmed text of the first element named name, in
// document order.
func (d *Descriptor) Value(name string) (string, bool) {
	var (
		value string
		found bool
	)
	d.root.walk(func(n *node) {
		if found || n.XMLName.Local != name {
			return
		}
		value = strings.TrimSpace(n.Text)
		found = true
	})
	return value, found
}

// IsApplication reports whether the descriptor declares a MAUI executable.
func (d *Descriptor) IsApplication() bool {
	useMaui, _ := d.Value(ElementUseMaui)
	outputType, _ := d.Value(ElementOutputType)
	return useMaui == "true" && outputType == "Exe"
}

// TargetFrameworks returns the declared target framework identifiers: those
// of the first TargetFrameworks element, followed by those of every
// TargetFrameworks element carrying a Condition attribute. Duplicates are
// dropped within each of the two lists but not across them, so a
// conditional identifier always follows the primary ones and takes
// precedence when both name the same platform.
func (d *Descriptor) TargetFrameworks() []string {
	var (
		primary, conditional []string
		first                = true
	)
	add := func(list []string, value string) []string {
		for id := range strings.SplitSeq(value, ";") {
			id = strings.TrimSpace(id)
			if id == "" || slices.Contains(list, id) {
				continue
			}
			list = append(list, id)
		}
		return list
	}

	d.root.walk(func(n *node) {
		if n.XMLName.Local != ElementTargetFrameworks {
			return
		}
		if first {
			first = false
			primary = add(primary, n.Text)
			return
		}
		if _, ok := n.attr(AttrCondition); ok {
			conditional = add(conditional, n.Text)
		}
	})

	return append(primary, conditional...)
}

// Platforms classifies the declared target frameworks.
func (d *Descriptor) Platforms() platform.Map {
	m := platform.Map{}
	for _, id := range d.TargetFrameworks() {
		m.Add(id)
	}
	return m
}
