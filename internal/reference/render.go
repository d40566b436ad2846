package reference

import "github.com/launchpost/sdkref/internal/templates"

// Render produces the SDK Reference markdown fragment. The fragment's
// exact layout (heading, unpadded table cells, single trailing newline)
// matches the already-published README, so the template must not be
// reflowed. Resources without methods are dropped; descriptions are
// emitted verbatim, markdown special characters included.
func Render(engine templates.Engine, ref *Reference) (string, error) {
	populated := make([]Resource, 0, len(ref.Resources))
	for _, r := range ref.Resources {
		if len(r.Methods) == 0 {
			continue
		}
		populated = append(populated, r)
	}

	return engine.Execute("reference.md.tmpl", &Reference{Resources: populated})
}
