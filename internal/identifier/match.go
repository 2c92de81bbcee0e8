package identifier

// Matches reports whether candidate matches pattern: same number of
// links, and every corresponding link matches segment by segment, with
// no backtracking (each segment consumes exactly one candidate segment).
func Matches(pattern, candidate Identifier) bool {
	if len(pattern.Links) != len(candidate.Links) {
		return false
	}
	for i := range pattern.Links {
		if !linkMatches(pattern.Links[i], candidate.Links[i]) {
			return false
		}
	}
	return true
}

func linkMatches(p, c Link) bool {
	if !segMatches(p.Vendor, c.Vendor) || !segMatches(p.Package, c.Package) ||
		!segMatches(p.Namespace, c.Namespace) || !segMatches(p.Type, c.Type) {
		return false
	}
	// A link whose version suffix was omitted entirely leaves version and
	// type-marker fully unconstrained (see Link.OmittedVersion).
	if p.OmittedVersion || c.OmittedVersion {
		return true
	}
	if p.TypeMarker != c.TypeMarker {
		return false
	}
	if !versionPartMatches(p.MajorWild, p.Major, c.MajorWild, c.Major) {
		return false
	}
	return minorMatches(p, c)
}

func segMatches(p, c string) bool {
	return isWildcardSeg(p) || isWildcardSeg(c) || p == c
}

func versionPartMatches(pWild bool, pVal int, cWild bool, cVal int) bool {
	return pWild || cWild || pVal == cVal
}

// minorMatches implements "minor matches by equality, by '*', or by both
// sides absent".
func minorMatches(p, c Link) bool {
	if !p.HasMinor && !c.HasMinor {
		return true
	}
	if p.HasMinor && p.MinorWild {
		return true
	}
	if c.HasMinor && c.MinorWild {
		return true
	}
	if p.HasMinor != c.HasMinor {
		return false
	}
	return p.Minor == c.Minor
}
