//go:build checkedfloat_release

package checkedfloat

// In release builds Checker.Assert compiles to nothing. Values that enter
// through TryNew, FromRaw or Parse are still checked.
const assertionsEnabled = false
