package identifier

// Error code constants, grouped the way the grammar is walked.
// E0xx: lexical errors (empty input, missing prefix, bad segment
// characters, malformed major/minor version).
// E1xx: structural/grammar errors (wrong segment count, trailing junk,
// chain-link shape).
const (
	ErrEmptyInput         = "E001"
	ErrMissingPrefix      = "E002"
	ErrInvalidSegment     = "E003"
	ErrInvalidVersion     = "E004"
	ErrInvalidMinor       = "E005"

	ErrWrongSegmentCount = "E100"
	ErrTrailingInput     = "E101"
	ErrEmptyChainLink    = "E102"
	ErrInnerLinkNotSchema = "E103"
)
