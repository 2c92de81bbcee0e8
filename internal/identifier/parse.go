package identifier

import (
	"strconv"
	"strings"

	"github.com/gts-project/gts/internal/gtserr"
)

// scanner is a minimal single-pass cursor over the identifier text. It
// deliberately carries no line/column split (identifiers are single-line
// tokens) but keeps the position field so error messages can point at the
// offending byte.
type scanner struct {
	src string
	pos int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	return c
}

func parseErr(code, msg string) *gtserr.Error {
	return gtserr.New(gtserr.KindParseError, code, msg)
}

// Parse parses text into an Identifier. Parsing is greedy and single-pass:
// a complete link is consumed, and if input remains it must start another
// complete link with no separator (a chain).
func Parse(text string) (Identifier, error) {
	if len(text) == 0 {
		return Identifier{}, parseErr(ErrEmptyInput, "empty input")
	}

	s := &scanner{src: text}
	var links []Link

	for {
		link, err := parseLink(s)
		if err != nil {
			return Identifier{}, err
		}
		links = append(links, link)

		if s.atEnd() {
			break
		}
		if !strings.HasPrefix(s.src[s.pos:], "gts.") {
			return Identifier{}, parseErr(ErrTrailingInput,
				"stray characters after last link: "+s.src[s.pos:])
		}
	}

	for i := 0; i < len(links)-1; i++ {
		inner := Identifier{Links: []Link{links[i]}}
		if inner.Classify() != ClassSchema {
			return Identifier{}, parseErr(ErrInnerLinkNotSchema,
				"chain link "+renderLink(links[i])+" is not a schema reference")
		}
	}

	return Identifier{Links: links}, nil
}

func parseLink(s *scanner) (Link, error) {
	if !strings.HasPrefix(s.src[s.pos:], "gts.") {
		return Link{}, parseErr(ErrMissingPrefix, "missing 'gts.' prefix at byte "+strconv.Itoa(s.pos))
	}
	s.pos += len("gts.")

	var link Link
	segs := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		seg, err := scanSegment(s)
		if err != nil {
			return Link{}, err
		}
		segs = append(segs, seg)
		if i < 3 {
			if s.atEnd() || s.peek() != '.' {
				return Link{}, parseErr(ErrWrongSegmentCount,
					"expected 4 dot-separated segments before version")
			}
			s.advance()
		}
	}
	link.Vendor, link.Package, link.Namespace, link.Type = segs[0], segs[1], segs[2], segs[3]

	// A pattern may omit the version entirely, e.g. "gts.x.core.events.*"
	// has no ".v..." suffix at all; an omitted version is treated as an
	// implicit major-version wildcard.
	if s.atEnd() || strings.HasPrefix(s.src[s.pos:], "gts.") {
		link.MajorWild = true
		link.OmittedVersion = true
		return link, nil
	}

	if s.peek() != '.' {
		return Link{}, parseErr(ErrWrongSegmentCount, "missing version component")
	}
	s.advance()
	if s.atEnd() || s.peek() != 'v' {
		return Link{}, parseErr(ErrInvalidVersion, "expected 'v' introducing version")
	}
	s.advance()

	major, majorWild, err := scanVersionPart(s)
	if err != nil {
		return Link{}, err
	}
	link.Major, link.MajorWild = major, majorWild

	if !s.atEnd() && s.peek() == '.' {
		// Lookahead: a chain link also starts with '.'? No — chain links
		// start with a fresh "gts." with no leading dot, so any '.' here
		// unambiguously introduces the minor version.
		s.advance()
		minor, minorWild, err := scanVersionPart(s)
		if err != nil {
			return Link{}, parseErr(ErrInvalidMinor, err.Error())
		}
		link.HasMinor = true
		link.Minor, link.MinorWild = minor, minorWild
	}

	if !s.atEnd() && s.peek() == '~' {
		s.advance()
		link.TypeMarker = true
	}

	return link, nil
}

// scanSegment reads one dot-delimited segment and validates it against the
// grammar: "*", "_", or [A-Za-z_][A-Za-z0-9_-]*.
func scanSegment(s *scanner) (string, error) {
	start := s.pos
	for !s.atEnd() {
		c := s.peek()
		if c == '.' || c == '~' {
			break
		}
		s.advance()
	}
	seg := s.src[start:s.pos]
	if seg == "" {
		return "", parseErr(ErrInvalidSegment, "empty segment")
	}
	if isWildcardSeg(seg) {
		return seg, nil
	}
	if !isValidSegment(seg) {
		return "", parseErr(ErrInvalidSegment, "invalid segment: "+seg)
	}
	return seg, nil
}

func isValidSegment(seg string) bool {
	first := seg[0]
	if !(isAlpha(first) || first == '_') {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if !(isAlpha(c) || isDigit(c) || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanVersionPart reads either "*" or a run of digits, returning the
// integer value (0 when wildcard) and whether it was a wildcard.
func scanVersionPart(s *scanner) (int, bool, error) {
	if !s.atEnd() && s.peek() == '*' {
		s.advance()
		return 0, true, nil
	}
	start := s.pos
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}
	digits := s.src[start:s.pos]
	if digits == "" {
		return 0, false, parseErr(ErrInvalidVersion, "expected digits or '*'")
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false, parseErr(ErrInvalidVersion, "malformed version number: "+digits)
	}
	return n, false, nil
}
