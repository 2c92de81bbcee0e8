// Package compat implements a schema compatibility engine: a structural
// diff between two JSON Schema documents belonging to the same schema
// family, producing backward/forward/full/incompatible verdicts with
// structured per-pointer reasons.
package compat

import (
	"fmt"
	"sort"
)

// ReasonKind is one of the closed set of structural reasons a comparison
// can report.
type ReasonKind string

const (
	ReasonRequiredAdded       ReasonKind = "required-added"
	ReasonTypeNarrowed        ReasonKind = "type-narrowed"
	ReasonTypeWidened         ReasonKind = "type-widened"
	ReasonEnumShrunk          ReasonKind = "enum-shrunk"
	ReasonEnumGrown           ReasonKind = "enum-grown"
	ReasonPropertyRemoved     ReasonKind = "property-removed"
	ReasonUnresolvedRef       ReasonKind = "unresolved-ref"
	ReasonUnhandledKeyword    ReasonKind = "unhandled-keyword"
	ReasonConstraintTightened ReasonKind = "constraint-tightened"
	ReasonConstraintLoosened  ReasonKind = "constraint-loosened"
)

// Reason is one structural violation found at a specific JSON pointer.
type Reason struct {
	Pointer string
	Kind    ReasonKind
	Detail  string
}

// Report is the full result of comparing two schema documents.
type Report struct {
	Backward bool
	Forward  bool
	Full     bool
	Reasons  []Reason
}

// handledKeywords is the closed set of JSON Schema keywords the engine
// understands structurally. Anything else encountered on either side
// produces an unhandled-keyword reason rather than being silently
// ignored or mis-evaluated.
var handledKeywords = map[string]bool{
	"type": true, "required": true, "properties": true,
	"enum": true, "default": true, "anyOf": true, "items": true,
	"minimum": true, "maximum": true,
	"minLength": true, "maxLength": true,
	"minItems": true, "maxItems": true,
}

// constraintKeys maps a schema node's declared type to the min/max
// keyword pair that bounds it: minimum/maximum for numbers, min/maxLength
// for strings, min/maxItems for arrays. Booleans, objects, and null carry
// no such range constraint.
var constraintKeys = map[string][2]string{
	"number":  {"minimum", "maximum"},
	"integer": {"minimum", "maximum"},
	"string":  {"minLength", "maxLength"},
	"array":   {"minItems", "maxItems"},
}

// Compare performs the structural diff between old and new, both decoded
// JSON Schema documents (map[string]any). Checking that both identifiers
// share vendor/package/namespace/type is the caller's responsibility;
// Compare itself only looks at the documents.
func Compare(old, nu map[string]any) Report {
	c := &comparer{}
	c.walk("", old, nu)

	backward := true
	forward := true
	for _, r := range c.reasons {
		switch r.Kind {
		case ReasonRequiredAdded, ReasonTypeNarrowed, ReasonPropertyRemoved:
			backward = false
		case ReasonTypeWidened:
			forward = false
		case ReasonEnumShrunk:
			backward = false
		case ReasonEnumGrown:
			forward = false
		case ReasonUnresolvedRef, ReasonUnhandledKeyword:
			backward = false
			forward = false
		case ReasonConstraintTightened:
			backward = false
		case ReasonConstraintLoosened:
			forward = false
		}
	}

	sort.Slice(c.reasons, func(i, j int) bool { return c.reasons[i].Pointer < c.reasons[j].Pointer })
	return Report{Backward: backward, Forward: forward, Full: backward && forward, Reasons: c.reasons}
}

type comparer struct {
	reasons []Reason
}

func (c *comparer) add(pointer string, kind ReasonKind, detail string) {
	c.reasons = append(c.reasons, Reason{Pointer: pointer, Kind: kind, Detail: detail})
}

// walk compares the schema nodes old and new found at pointer, recursing
// into properties/items/anyOf.
func (c *comparer) walk(pointer string, old, nu map[string]any) {
	c.flagUnhandled(pointer, old)
	c.flagUnhandled(pointer, nu)

	c.compareTypes(pointer, old["type"], nu["type"])
	c.compareEnums(pointer, old["enum"], nu["enum"])
	c.compareConstraints(pointer, old, nu)
	c.compareRequired(pointer, old, nu)
	c.compareProperties(pointer, old, nu)
	c.compareAnyOf(pointer, old["anyOf"], nu["anyOf"])
	c.compareItems(pointer, old["items"], nu["items"])
}

func (c *comparer) flagUnhandled(pointer string, schema map[string]any) {
	for key := range schema {
		if key == "$ref" {
			c.add(pointer, ReasonUnresolvedRef, "schema references $ref, which compat does not resolve beyond the store")
			continue
		}
		if !handledKeywords[key] {
			c.add(pointer, ReasonUnhandledKeyword, fmt.Sprintf("keyword %q is not evaluated by the compatibility engine", key))
		}
	}
}

func (c *comparer) compareTypes(pointer string, oldType, newType any) {
	oldSet := typeSet(oldType)
	newSet := typeSet(newType)
	if len(oldSet) == 0 && len(newSet) == 0 {
		return
	}
	if isSubset(newSet, oldSet) && !sameSet(oldSet, newSet) {
		c.add(pointer, ReasonTypeNarrowed, fmt.Sprintf("type narrowed from %v to %v", oldSet, newSet))
		return
	}
	if isSubset(oldSet, newSet) && !sameSet(oldSet, newSet) {
		c.add(pointer, ReasonTypeWidened, fmt.Sprintf("type widened from %v to %v", oldSet, newSet))
		return
	}
	if !sameSet(oldSet, newSet) {
		c.add(pointer, ReasonTypeNarrowed, fmt.Sprintf("incompatible type sets %v and %v", oldSet, newSet))
	}
}

func (c *comparer) compareEnums(pointer string, oldEnum, newEnum any) {
	oldSet := stringSet(oldEnum)
	newSet := stringSet(newEnum)
	if len(oldSet) == 0 && len(newSet) == 0 {
		return
	}
	if isSubset(newSet, oldSet) && !sameSet(oldSet, newSet) {
		c.add(pointer, ReasonEnumShrunk, "enum values removed")
		return
	}
	if isSubset(oldSet, newSet) && !sameSet(oldSet, newSet) {
		c.add(pointer, ReasonEnumGrown, "enum values added")
	}
}

// compareConstraints checks the range keyword pair (minimum/maximum,
// minLength/maxLength, or minItems/maxItems) implied by old's declared
// type. Tightening a bound in nu breaks backward compatibility; loosening
// or dropping it breaks forward compatibility.
func (c *comparer) compareConstraints(pointer string, old, nu map[string]any) {
	oldType, _ := old["type"].(string)
	pair, ok := constraintKeys[oldType]
	if !ok {
		return
	}
	c.compareBound(pointer, old, nu, pair[0], true)
	c.compareBound(pointer, old, nu, pair[1], false)
}

// compareBound checks one bound of a min/max pair. isMin selects whether
// a numerically larger value on the nu side counts as tightening (true
// for a minimum) or loosening (false, for a maximum).
func (c *comparer) compareBound(pointer string, old, nu map[string]any, key string, isMin bool) {
	oldVal, oldHas := numberField(old, key)
	newVal, newHas := numberField(nu, key)

	switch {
	case oldHas && newHas:
		if newVal == oldVal {
			return
		}
		tightened := (isMin && newVal > oldVal) || (!isMin && newVal < oldVal)
		if tightened {
			c.add(pointer, ReasonConstraintTightened,
				fmt.Sprintf("%s changed from %v to %v", key, oldVal, newVal))
		} else {
			c.add(pointer, ReasonConstraintLoosened,
				fmt.Sprintf("%s changed from %v to %v", key, oldVal, newVal))
		}
	case !oldHas && newHas:
		c.add(pointer, ReasonConstraintTightened,
			fmt.Sprintf("%s constraint added: %v", key, newVal))
	case oldHas && !newHas:
		c.add(pointer, ReasonConstraintLoosened,
			fmt.Sprintf("%s constraint removed", key))
	}
}

func numberField(schema map[string]any, key string) (float64, bool) {
	v, ok := schema[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// compareRequired applies the required-property rule: every property
// required by nu must be required by old, or have a default in nu, or
// the comparison fails backward compatibility.
func (c *comparer) compareRequired(pointer string, old, nu map[string]any) {
	oldRequired := stringSet(old["required"])
	newRequired := stringSet(nu["required"])
	newProps, _ := nu["properties"].(map[string]any)

	for name := range newRequired {
		if oldRequired[name] {
			continue
		}
		if hasDefault(newProps, name) {
			continue
		}
		c.add(childPointer(pointer, name), ReasonRequiredAdded,
			fmt.Sprintf("property %q became required without a default", name))
	}
}

func hasDefault(props map[string]any, name string) bool {
	prop, ok := props[name].(map[string]any)
	if !ok {
		return false
	}
	_, hasDefault := prop["default"]
	return hasDefault
}

func (c *comparer) compareProperties(pointer string, old, nu map[string]any) {
	oldProps, _ := old["properties"].(map[string]any)
	newProps, _ := nu["properties"].(map[string]any)
	oldRequired := stringSet(old["required"])

	for name, oldPropAny := range oldProps {
		oldProp, _ := oldPropAny.(map[string]any)
		newPropAny, stillPresent := newProps[name]
		childPtr := childPointer(pointer, name)
		if !stillPresent {
			if oldRequired[name] {
				c.add(childPtr, ReasonPropertyRemoved,
					fmt.Sprintf("required property %q removed", name))
			}
			continue
		}
		newProp, _ := newPropAny.(map[string]any)
		c.walk(childPtr, oldProp, newProp)
	}
}

func (c *comparer) compareAnyOf(pointer string, oldAny, newAny any) {
	oldVariants, _ := oldAny.([]any)
	newVariants, _ := newAny.([]any)
	if len(oldVariants) == 0 && len(newVariants) == 0 {
		return
	}
	for i := 0; i < len(oldVariants) || i < len(newVariants); i++ {
		var oldVariant, newVariant map[string]any
		if i < len(oldVariants) {
			oldVariant, _ = oldVariants[i].(map[string]any)
		}
		if i < len(newVariants) {
			newVariant, _ = newVariants[i].(map[string]any)
		}
		c.walk(fmt.Sprintf("%s/anyOf/%d", pointer, i), oldVariant, newVariant)
	}
}

func (c *comparer) compareItems(pointer string, oldItems, newItems any) {
	oldSchema, _ := oldItems.(map[string]any)
	newSchema, _ := newItems.(map[string]any)
	if oldSchema == nil && newSchema == nil {
		return
	}
	c.walk(pointer+"/items", oldSchema, newSchema)
}

func childPointer(parent, name string) string {
	return fmt.Sprintf("%s/properties/%s", parent, name)
}

// typeSet normalizes a "type" keyword value (a single string, or an
// array for unions) into a set for set-comparison.
func typeSet(v any) map[string]bool {
	switch t := v.(type) {
	case string:
		return map[string]bool{t: true}
	case []any:
		return stringSet(t)
	default:
		return map[string]bool{}
	}
}

func stringSet(v any) map[string]bool {
	items, _ := v.([]any)
	out := map[string]bool{}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out[s] = true
		} else {
			out[fmt.Sprint(item)] = true
		}
	}
	return out
}

func isSubset(a, b map[string]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func sameSet(a, b map[string]bool) bool {
	return len(a) == len(b) && isSubset(a, b)
}
