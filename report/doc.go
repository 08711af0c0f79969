// Package report renders lab results for humans: the topological order as
// an arrow chain, critical-path timing, and weight/room tables.
//
// Tables are drawn with go-pretty; everything else is plain text so it can
// be compared verbatim in tests.
package report
