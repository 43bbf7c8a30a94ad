// Package ir provides the tree value used by fieldmap: a self-describing
// node structure for JSON-like data.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: string-keyed entries, in insertion order
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.NewObject().Set("key", ir.FromString("value"))
//	arr := ir.NewArray().Append(ir.FromInt(1)).Append(ir.FromInt(2))
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are
// String typed and each key appears once; Set replaces an existing entry.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the literal text, when parsed from a document
//
// A parsed integer that does not fit in int64 has Float64 and Number set.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField). KPath reports where a node sits:
//
//	kpath := node.KPath() // e.g., "foo.bar[0]"
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/fieldmap - typed values to and from nodes
//   - github.com/signadot/fieldmap/parse - parses text into nodes
//   - github.com/signadot/fieldmap/encode - encodes nodes to text
package ir
