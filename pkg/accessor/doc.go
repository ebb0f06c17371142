// Package accessor normalises the numeric accessors used by shape generators
// and stack layouts. Any option typed as an accessor may be supplied either as
// a function of the datum or as a constant number; Value and From collapse both
// forms into a Func.
package accessor
