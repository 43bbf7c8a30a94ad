package codegen

import (
	"go/token"
	"go/types"
)

// StructInfo describes a struct marked for generation.
type StructInfo struct {
	// Name is the struct type name
	Name string

	// Named is the checked type of the struct
	Named *types.Named

	// Pos locates the type declaration, for error messages
	Pos token.Position

	// Fields lists the tagged fields in declaration order
	Fields []*FieldInfo
}

// FieldInfo describes one tagged struct field.
type FieldInfo struct {
	// Name is the Go field name
	Name string

	// Key is the object key from the fieldmap tag
	Key string

	// Type is the checked field type
	Type types.Type
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files contains paths to all .go files in the package
	Files []string
}

// Config holds configuration for code generation
type Config struct {
	// OutputFile overrides the output path (default: <dir>/<package>_fieldmap.go)
	OutputFile string

	// Dir is the directory to scan for Go files
	Dir string

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool
}
