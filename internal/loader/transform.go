package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"

	"github.com/launchpost/sdkref/internal/model"
)

// Transform reduces the parsed document to the slice of the spec the
// reference generator reads: the operations under the five standard
// verbs of every path, plus per-operation x-sdkref-* overrides. Other
// verbs and everything below the operation level are ignored.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			spec.Operations = append(spec.Operations, transformPath(pathStr, pathItem)...)
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformPath(pathStr string, pathItem *v3.PathItem) []model.Operation {
	var ops []model.Operation

	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPost, pathItem.Post},
		{model.MethodPut, pathItem.Put},
		{model.MethodPatch, pathItem.Patch},
		{model.MethodDelete, pathItem.Delete},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		ops = append(ops, transformOperation(m.method, pathStr, m.op))
	}

	return ops
}

func transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	return model.Operation{
		ID:         op.OperationId,
		Method:     method,
		Path:       path,
		Summary:    op.Summary,
		Tags:       op.Tags,
		Extensions: parseExtensions(op.Extensions),
	}
}

func parseExtensions(extensions *orderedmap.Map[string, *yaml.Node]) *model.OperationExtensions {
	if extensions == nil {
		return nil
	}

	var ext *model.OperationExtensions

	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		key := pair.Key()
		node := pair.Value()

		if !strings.HasPrefix(key, "x-sdkref-") {
			continue
		}

		if ext == nil {
			ext = &model.OperationExtensions{}
		}

		switch key {
		case "x-sdkref-skip":
			if node.Kind == yaml.ScalarNode {
				// Decode rather than compare node.Value so the YAML
				// bool spellings (True, TRUE) all count.
				var skip bool
				if err := node.Decode(&skip); err == nil {
					ext.Skip = skip
				}
			}
		case "x-sdkref-name":
			if node.Kind == yaml.ScalarNode {
				ext.Name = node.Value
			}
		}
	}

	return ext
}
