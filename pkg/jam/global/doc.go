// Package global loads the preamble of a run: the number of cases and any
// data shared by all of them.
//
// Three layouts are supported and none of them is preferred:
// - CountOnly: just the case count
// - CountPrefix: the count, then the shared data
// - CountSuffix: the shared data, then the count
package global
