// Package binconfig decodes the binarized config-tree format (bin-config):
// a recursive, self-describing typed-tree parser driven by a single-pass
// byte stream, with a back-referenced string pool and a variable-length
// integer encoding.
package binconfig

// ScalarKind tags the payload carried by a ScalarValue.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarFloat32
	ScalarInt32
)

// ScalarValue is a tagged variant over String/Float32/Int32.
type ScalarValue struct {
	Kind  ScalarKind
	Str   []byte
	F32   float32
	I32   int32
}

// ArrayElementKind tags the payload carried by an ArrayElement. It extends
// ScalarKind with a nested-array case.
type ArrayElementKind int

const (
	ElementString ArrayElementKind = iota
	ElementFloat32
	ElementInt32
	ElementArray
)

// ArrayElement is a tagged variant over String(bytes)/Float32(f32)/Int32(i32)
// plus a nested Array of further ArrayElements.
type ArrayElement struct {
	Kind  ArrayElementKind
	Str   []byte
	F32   float32
	I32   int32
	Array []ArrayElement
}

// EntryKind tags the variant carried by a ConfigEntry.
type EntryKind int

const (
	EntryClass EntryKind = iota
	EntryScalar
	EntryArray
	EntryDefines
)

// DefineEntry is one (name, value) pair of a Defines block.
type DefineEntry struct {
	Name  []byte
	Value int32
}

// ConfigEntry is a tagged variant over Class, Scalar, Array, and Defines.
// Only the fields relevant to Kind are populated.
type ConfigEntry struct {
	Kind EntryKind

	// Class
	Name     []byte
	Parent   []byte
	Children []ConfigEntry

	// Scalar
	Value ScalarValue

	// Array
	Elements []ArrayElement

	// Defines
	Defines []DefineEntry
}
