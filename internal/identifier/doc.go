// Package identifier implements the GTS identifier grammar: parsing,
// classification (schema / schema-version-pin / instance), canonical
// rendering, deterministic UUID derivation, and wildcard pattern matching.
//
// A single link has the form:
//
//	gts.<vendor>.<package>.<namespace>.<type>.v<major>[.<minor>][~]
//
// A chained identifier is a sequence of complete links concatenated with
// no separator; chains model schema composition (see ChainLinks).
package identifier
