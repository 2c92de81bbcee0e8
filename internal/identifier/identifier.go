package identifier

import (
	"strconv"
	"strings"
)

// Link is one `gts.<vendor>.<package>.<namespace>.<type>.v<major>[.<minor>][~]`
// segment of an identifier. Name segments are stored as written; a segment
// equal to "*" or "_" is a single-segment wildcard, and the two spellings
// are equivalent for matching and pattern detection. Render keeps the
// spelling as written, so Equal tells them apart.
type Link struct {
	Vendor, Package, Namespace, Type string

	Major      int
	MajorWild  bool
	HasMinor   bool
	Minor      int
	MinorWild  bool
	TypeMarker bool

	// OmittedVersion marks a link whose ".v..." suffix was absent from the
	// source text entirely, e.g. "gts.x.core.events.*". Such a link is
	// always a pattern and, for matching purposes, leaves version and
	// type-marker fully unconstrained.
	OmittedVersion bool
}

// Identifier is a non-empty ordered sequence of links: Links[0] is the
// primary link, Links[1:] is the chain. Identifiers are immutable once
// parsed.
type Identifier struct {
	Links []Link
}

// Classification is the three-way (plus "none of the above") category a
// parsed identifier falls into.
type Classification int

const (
	ClassUnclassified Classification = iota
	ClassSchema
	ClassSchemaVersionPin
	ClassInstance
)

func isWildcardSeg(s string) bool {
	return s == "*" || s == "_"
}

func (l Link) nameSegments() [4]string {
	return [4]string{l.Vendor, l.Package, l.Namespace, l.Type}
}

// last returns the link whose type_marker/minor classify the whole chain.
func (id Identifier) last() Link {
	return id.Links[len(id.Links)-1]
}

// head returns the primary (first) link.
func (id Identifier) head() Link {
	return id.Links[0]
}

// Classify returns the identifier's classification, derived entirely
// from its last link's type_marker/minor combination.
func (id Identifier) Classify() Classification {
	last := id.last()
	switch {
	case last.TypeMarker && !last.HasMinor:
		return ClassSchema
	case last.TypeMarker && last.HasMinor:
		return ClassSchemaVersionPin
	case !last.TypeMarker && last.HasMinor:
		return ClassInstance
	default:
		return ClassUnclassified
	}
}

// IsSchema reports whether the identifier is a schema reference (no pinned
// minor version on its last link).
func (id Identifier) IsSchema() bool { return id.Classify() == ClassSchema }

// IsSchemaVersionPin reports whether the identifier pins a specific minor
// version of a schema.
func (id Identifier) IsSchemaVersionPin() bool { return id.Classify() == ClassSchemaVersionPin }

// IsInstance reports whether the identifier names a data instance.
func (id Identifier) IsInstance() bool { return id.Classify() == ClassInstance }

// IsPattern reports whether any segment or version component of any link
// in the chain is a wildcard.
func (id Identifier) IsPattern() bool {
	for _, l := range id.Links {
		for _, seg := range l.nameSegments() {
			if isWildcardSeg(seg) {
				return true
			}
		}
		if l.MajorWild || l.MinorWild {
			return true
		}
	}
	return false
}

// ChainLinks returns the full ordered sequence of links, head first.
func (id Identifier) ChainLinks() []Link {
	return id.Links
}

// HeadIdentifier returns a single-link Identifier for the chain's head,
// used by reference-integrity checks that only require the head link of
// a chained schema_id to resolve.
func (id Identifier) HeadIdentifier() Identifier {
	return Identifier{Links: []Link{id.head()}}
}

// Equal reports whether two identifiers have identical canonical renderings.
func (id Identifier) Equal(other Identifier) bool {
	return id.Render() == other.Render()
}

// Render returns the canonical textual form: input segments verbatim,
// version numbers without leading zeros, links concatenated with no
// separator between chain links. Render(Parse(s)) == Render(Parse(s'))
// whenever s and s' denote the same identifier.
func (id Identifier) Render() string {
	var b strings.Builder
	for _, l := range id.Links {
		b.WriteString(renderLink(l))
	}
	return b.String()
}

func renderLink(l Link) string {
	var b strings.Builder
	b.WriteString("gts.")
	segs := l.nameSegments()
	for i, s := range segs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	b.WriteString(".v")
	if l.MajorWild {
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.Itoa(l.Major))
	}
	if l.HasMinor {
		b.WriteByte('.')
		if l.MinorWild {
			b.WriteByte('*')
		} else {
			b.WriteString(strconv.Itoa(l.Minor))
		}
	}
	if l.TypeMarker {
		b.WriteByte('~')
	}
	return b.String()
}

// String implements fmt.Stringer via the canonical rendering.
func (id Identifier) String() string { return id.Render() }

// SameFamily reports whether two schema identifiers share
// vendor/package/namespace/type on their last link, the precondition for
// running a compatibility comparison between them.
func SameFamily(a, b Identifier) bool {
	la, lb := a.last(), b.last()
	return la.Vendor == lb.Vendor && la.Package == lb.Package &&
		la.Namespace == lb.Namespace && la.Type == lb.Type
}
