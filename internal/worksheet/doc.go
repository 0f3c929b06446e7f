// Package worksheet holds the editable state of an estimate: three lists of surfaces and the
// coverage, cost and crew inputs, plus an in-process store of worksheets.
package worksheet
