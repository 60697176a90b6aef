package descriptor

import (
	"strings"

	"github.com/thoreinstein/mpm/internal/platform"
	"github.com/thoreinstein/mpm/internal/validator"
)

// Lint checks the descriptor for the declarations mpm relies on. A result
// without errors means IsApplication holds.
func (d *Descriptor) Lint() *validator.Result {
	result := validator.NewResult(d.Path)

	useMaui, ok := d.Value(ElementUseMaui)
	switch {
	case !ok:
		result.AddError(ElementUseMaui, "is missing; MAUI applications set it to true", "")
	case useMaui != "true":
		result.AddError(ElementUseMaui, "must be true", useMaui)
	}

	outputType, ok := d.Value(ElementOutputType)
	switch {
	case !ok:
		result.AddError(ElementOutputType, "is missing; applications set it to Exe", "")
	case outputType != "Exe":
		result.AddError(ElementOutputType, "must be Exe", outputType)
	}

	ids := d.TargetFrameworks()
	if len(ids) == 0 {
		result.AddWarning(ElementTargetFrameworks, "declares no target frameworks", "")
		return result
	}

	seen := map[string]string{}
	for _, id := range ids {
		// MSBuild property references are expanded by the toolchain.
		if strings.HasPrefix(id, "$(") {
			continue
		}

		name, ok := platform.Classify(id)
		if !ok {
			result.AddWarning(ElementTargetFrameworks, "is not a platform framework and is ignored", id)
			continue
		}
		if prev, dup := seen[name]; dup && prev != id {
			result.AddWarning(ElementTargetFrameworks, "overrides "+prev+" for "+name, id)
		}
		seen[name] = id
	}

	for _, e := range d.Platforms().Entries() {
		result.AddInfo(ElementTargetFrameworks, "declares "+e.Name, e.Identifier)
	}

	return result
}
