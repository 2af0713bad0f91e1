//go:build !checkedfloat_release

package checkedfloat

const assertionsEnabled = true
