// Package caster rewrites a copy of an instance document to match a target
// schema that differs from its current schema only in minor version,
// inserting a property's declared default where the newer schema added
// it and dropping properties the newer schema removed.
package caster

import (
	"fmt"

	"github.com/gts-project/gts/internal/compat"
	"github.com/gts-project/gts/internal/gtserr"
)

const ErrUncasteable = "E030"

// Direction names which compatibility direction must hold for a cast to
// be attempted: casting to a newer minor requires forward compatibility
// (the old schema must accept instances shaped like the new one read
// backwards), casting to an older minor requires backward compatibility.
type Direction int

const (
	ToNewer Direction = iota
	ToOlder
)

// Cast rewrites instance (a decoded JSON document, typically
// map[string]any) from its current schema shape to targetSchema's shape,
// given the precomputed compatibility report between the two schemas and
// the direction of the cast. It returns a new value; instance itself is
// not mutated in place, but the returned value reuses unrelated subtrees.
func Cast(instance any, report compat.Report, dir Direction, oldSchema, targetSchema map[string]any) (any, error) {
	ok := report.Backward
	if dir == ToNewer {
		ok = report.Forward
	}
	if !ok {
		return nil, gtserr.New(gtserr.KindUncasteable, ErrUncasteable,
			"schemas are not compatible in the direction required for this cast")
	}

	obj, isObj := instance.(map[string]any)
	if !isObj {
		return instance, nil
	}

	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}

	oldProps, _ := oldSchema["properties"].(map[string]any)
	targetProps, _ := targetSchema["properties"].(map[string]any)

	for name := range oldProps {
		if _, stillPresent := targetProps[name]; !stillPresent {
			delete(out, name)
		}
	}

	for name, propAny := range targetProps {
		if _, present := out[name]; present {
			continue
		}
		prop, _ := propAny.(map[string]any)
		def, hasDefault := prop["default"]
		if !hasDefault {
			return nil, gtserr.New(gtserr.KindUncasteable, ErrUncasteable,
				fmt.Sprintf("property %q was added without a default and cannot be synthesized", name)).
				WithPointer("/properties/" + name)
		}
		out[name] = def
	}

	return out, nil
}
