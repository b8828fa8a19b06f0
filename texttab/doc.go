// Package texttab renders small bordered ASCII tables for terminal
// reporting: hyperparameter dumps before a run and periodic score rows
// during evaluation.
//
// The layout follows the classic texttable look — '+'-cornered '-'
// rules between rows, a '='-rule under the header, left-aligned cells:
//
//	+-----------+-------+
//	| Parameter | Value |
//	+===========+=======+
//	| Epochs    | 100   |
//	+-----------+-------+
//
// Rendering is pure string building; callers decide where the output
// goes.
package texttab
