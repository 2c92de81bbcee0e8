// Package query implements the attribute-selector expression language
// `pattern[filter]@attr`, evaluated against a store.Store. The grammar is
// deliberately closed — four productions, no user-defined functions, no
// parenthesized sub-expressions — so the package is a small hand-rolled
// lexer/parser rather than a general expression engine.
package query

import (
	"strconv"
	"strings"

	"github.com/gts-project/gts/internal/gtserr"
	"github.com/gts-project/gts/internal/identifier"
	"github.com/gts-project/gts/internal/jsonpath"
	"github.com/gts-project/gts/internal/store"
)

// Query is a parsed `pattern[filter]@attr` expression.
type Query struct {
	Pattern identifier.Identifier
	Filter  *Filter
	Attr    []string
}

// Parse parses text into a Query. The pattern prefix is delegated to
// internal/identifier; the bracketed filter uses this package's own
// lexer, and the @attr suffix is split on '.' into path steps.
func Parse(text string) (*Query, error) {
	patternText, rest, err := splitPattern(text)
	if err != nil {
		return nil, err
	}
	pattern, err := identifier.Parse(patternText)
	if err != nil {
		return nil, newSyntaxError("invalid pattern: " + err.Error())
	}

	q := &Query{Pattern: pattern}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, newSyntaxError("unterminated filter, missing ']'")
		}
		filter, err := parseFilter(rest[1:end])
		if err != nil {
			return nil, err
		}
		q.Filter = &filter
		rest = strings.TrimSpace(rest[end+1:])
	}

	if strings.HasPrefix(rest, "@") {
		attrText := strings.TrimSpace(rest[1:])
		if attrText == "" {
			return nil, newSyntaxError("expected attribute name after '@'")
		}
		q.Attr = strings.Split(attrText, ".")
		rest = ""
	}

	if rest != "" {
		return nil, newSyntaxError("unexpected trailing input '" + rest + "'")
	}
	return q, nil
}

// splitPattern locates where the identifier pattern ends and the
// `[filter]`/`@attr` suffix begins: at the first '[' or '@' not
// otherwise part of the pattern grammar (identifiers never contain
// either character).
func splitPattern(text string) (pattern, rest string, err error) {
	idx := strings.IndexAny(text, "[@")
	if idx < 0 {
		return strings.TrimSpace(text), "", nil
	}
	return strings.TrimSpace(text[:idx]), text[idx:], nil
}

// Result is one matched record's query output: either its entity
// identifier (no @attr) or the resolved attribute value (@attr present).
type Result struct {
	ID    identifier.Identifier
	Value any
	HasID bool
}

// Evaluate runs q against st, returning at most limit results (limit <= 0
// means unbounded) in ascending canonical-identifier order for
// deterministic output.
func (q *Query) Evaluate(st *store.Store, limit int) ([]Result, error) {
	var out []Result
	for _, rec := range st.List(0) {
		if !identifier.Matches(q.Pattern, rec.EntityID) {
			continue
		}
		if q.Filter != nil {
			ok, err := evaluateFilter(*q.Filter, rec)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		if q.Attr != nil {
			value, found := jsonpath.Resolve(rec.Value, strings.Join(q.Attr, "."))
			if !found {
				continue
			}
			out = append(out, Result{Value: value})
		} else {
			out = append(out, Result{ID: rec.EntityID, HasID: true})
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func evaluateFilter(f Filter, rec store.Record) (bool, error) {
	result, err := evaluateTerm(f.Terms[0], rec)
	if err != nil {
		return false, err
	}
	for i, join := range f.Joins {
		next, err := evaluateTerm(f.Terms[i+1], rec)
		if err != nil {
			return false, err
		}
		if join == "and" {
			result = result && next
		} else {
			result = result || next
		}
	}
	return result, nil
}

func evaluateTerm(t Term, rec store.Record) (bool, error) {
	value, found := jsonpath.Resolve(rec.Value, strings.Join(t.Attr, "."))
	if !found {
		return false, nil
	}
	return compare(value, t.Op, t.Literal)
}

func compare(value any, op string, lit Literal) (bool, error) {
	switch op {
	case "~", "!~":
		match := strings.Contains(stringify(value), literalToString(lit))
		if op == "!~" {
			return !match, nil
		}
		return match, nil
	case "<", "<=", ">", ">=":
		left, leftOK := toNumber(value)
		right, rightOK := literalToNumber(lit)
		if !leftOK || !rightOK {
			return false, nil
		}
		switch op {
		case "<":
			return left < right, nil
		case "<=":
			return left <= right, nil
		case ">":
			return left > right, nil
		default:
			return left >= right, nil
		}
	case "=", "!=":
		eq := equalsLiteral(value, lit)
		if op == "!=" {
			return !eq, nil
		}
		return eq, nil
	default:
		return false, gtserr.New(gtserr.KindQuerySyntax, ErrSyntax, "unknown operator "+op)
	}
}

func equalsLiteral(value any, lit Literal) bool {
	switch {
	case lit.IsNull:
		return value == nil
	case lit.String != nil:
		s, ok := value.(string)
		return ok && s == *lit.String
	case lit.Number != nil:
		n, ok := toNumber(value)
		return ok && n == *lit.Number
	case lit.Bool != nil:
		b, ok := value.(bool)
		return ok && b == *lit.Bool
	default:
		return false
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func literalToNumber(lit Literal) (float64, bool) {
	if lit.Number == nil {
		return 0, false
	}
	return *lit.Number, true
}

func literalToString(lit Literal) string {
	switch {
	case lit.String != nil:
		return *lit.String
	case lit.Number != nil:
		return strconv.FormatFloat(*lit.Number, 'g', -1, 64)
	case lit.Bool != nil:
		return strconv.FormatBool(*lit.Bool)
	case lit.IsNull:
		return "null"
	default:
		return ""
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return "null"
	default:
		return ""
	}
}
