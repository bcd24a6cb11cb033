// Package conv provides safe integer conversion for index arguments.
//
// The removal API accepts any integer type as an index. Before the checked
// layer can compare an index against a slice length it must land in Go's int
// without sign loss or overflow; ToInt performs that conversion with bounds
// checking. The unchecked layer skips this entirely by contract.
package conv
