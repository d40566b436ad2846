// Package reference turns the operations of an OpenAPI spec into the
// ordered resource/method structure rendered as the README's SDK
// Reference section.
package reference

import (
	"sort"
	"strings"

	"github.com/launchpost/sdkref/internal/config"
	"github.com/launchpost/sdkref/internal/golang"
	"github.com/launchpost/sdkref/internal/model"
)

// Method is one renderable row: the exported client method name and
// its description.
type Method struct {
	Name        string
	Description string
}

// Resource groups the methods shown under one section heading. Key is
// the (possibly merged) tag; DisplayName is what the heading shows.
type Resource struct {
	Key         string
	DisplayName string
	Methods     []Method
}

type Reference struct {
	Resources []Resource
}

// Build extracts methods from the spec's operations, groups them by
// resource and returns them fully ordered: resources per the
// preferred/alphabetical/last partition, methods per CRUD priority.
func Build(spec *model.Spec, cfg config.ReferenceConfig) *Reference {
	methods := make(map[string][]Method)
	displayNames := make(map[string]string)
	discovered := make(map[string]bool)

	skip := cfg.SkipSet()

	for _, op := range spec.Operations {
		if op.Extensions != nil && op.Extensions.Skip {
			continue
		}
		// Only the first tag places an operation; the rest are ignored.
		if len(op.Tags) == 0 {
			continue
		}
		tag := op.Tags[0]
		if skip[tag] {
			continue
		}
		if op.ID == "" {
			continue
		}

		key, merged := cfg.MergeTags[tag]
		if !merged {
			key = tag
		}
		discovered[key] = true

		// A merged child tag contributes methods but never names the
		// parent's section.
		if !merged {
			if name, ok := cfg.DisplayNames[tag]; ok {
				displayNames[key] = name
			} else {
				displayNames[key] = tag
			}
		}

		name := golang.MethodName(op.ID)
		if op.Extensions != nil && op.Extensions.Name != "" {
			name = op.Extensions.Name
		}

		description := op.Summary
		if description == "" {
			description = name
		}

		methods[key] = append(methods[key], Method{Name: name, Description: description})
	}

	var resources []Resource
	for _, key := range resourceOrder(discovered, cfg) {
		ms := methods[key]
		if len(ms) == 0 {
			continue
		}
		sortMethods(ms)

		display := displayNames[key]
		if display == "" {
			display = key
		}

		resources = append(resources, Resource{
			Key:         key,
			DisplayName: display,
			Methods:     ms,
		})
	}

	return &Reference{Resources: resources}
}

// resourceOrder partitions the discovered keys: preferred resources in
// their listed order, then the rest alphabetically, then the forced-last
// resources in their listed order.
func resourceOrder(discovered map[string]bool, cfg config.ReferenceConfig) []string {
	preferred := make(map[string]bool, len(cfg.PreferredOrder))
	for _, key := range cfg.PreferredOrder {
		preferred[key] = true
	}
	last := make(map[string]bool, len(cfg.LastResources))
	for _, key := range cfg.LastResources {
		last[key] = true
	}

	var auto []string
	for key := range discovered {
		if !preferred[key] && !last[key] {
			auto = append(auto, key)
		}
	}
	sort.Strings(auto)

	order := make([]string, 0, len(discovered))
	for _, key := range cfg.PreferredOrder {
		if discovered[key] {
			order = append(order, key)
		}
	}
	order = append(order, auto...)
	for _, key := range cfg.LastResources {
		if discovered[key] {
			order = append(order, key)
		}
	}

	return order
}

// sortMethods orders a resource's methods CRUD-style: list/get-all,
// bulk/create, get, update, delete, everything else. Ties within a
// class break on the method name.
func sortMethods(methods []Method) {
	sort.SliceStable(methods, func(i, j int) bool {
		ci, cj := methodClass(methods[i].Name), methodClass(methods[j].Name)
		if ci != cj {
			return ci < cj
		}
		return methods[i].Name < methods[j].Name
	})
}

func methodClass(name string) int {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "list"), strings.HasPrefix(lower, "getall"):
		return 0
	case strings.HasPrefix(lower, "bulk"), strings.HasPrefix(lower, "create"):
		return 1
	case strings.HasPrefix(lower, "get"):
		return 2
	case strings.HasPrefix(lower, "update"):
		return 3
	case strings.HasPrefix(lower, "delete"):
		return 4
	default:
		return 5
	}
}
