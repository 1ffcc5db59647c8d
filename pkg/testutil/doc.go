// Package testutil provides helpers shared by almanac's tests.
//
// Isolate points configuration and state directories at per-test temp dirs
// and clears ALMANAC_* variables so a developer's environment never leaks
// into a test. The fixtures give every package the same worked example.
package testutil
