// Package typo corrects common literal typos at the start of a command line.
//
// Corrections are fixed-prefix rewrites checked in table order. The first
// matching pattern wins and at most one correction is applied, so a corrected
// command is never corrected again. There is no fuzzy matching.
package typo
