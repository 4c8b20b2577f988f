package binconfig

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer is a Sink that writes the bin2cpp-style textual form of a
// decoded config tree to an io.Writer as events arrive, matching the
// output format of original_source/bin2cpp.c's output()/read_entry():
// 4-space indentation per depth, "class Name: Parent {" / "class Name {",
// trailing "};" after a class body, "name = value;" for scalars, and
// "name[] = { ... };" for arrays.
type Renderer struct {
	w     io.Writer
	depth int
	err   error

	// arrayElemIndex tracks, per currently-open array, how many elements
	// have been printed so far, so that separators match the original's
	// read_array exactly (a ", " between elements, none before the first).
	arrayElemIndex []int
}

// NewRenderer wraps w. Render errors are sticky: once a write fails, all
// further Sink calls are no-ops and Err returns the first error.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Err returns the first write error encountered, if any.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = err
	}
}

func (r *Renderer) indent(depth int) string {
	return strings.Repeat("    ", depth)
}

func (r *Renderer) EnterClass(name, parent []byte) {
	r.printf("\n")
	if len(parent) > 0 {
		r.printf("%sclass %s: %s {\n", r.indent(r.depth), name, parent)
	} else {
		r.printf("%sclass %s {\n", r.indent(r.depth), name)
	}
	r.depth++
}

func (r *Renderer) LeaveClass() {
	r.depth--
	r.printf("%s};\n\n", r.indent(r.depth))
}

func (r *Renderer) Scalar(name []byte, value ScalarValue) {
	r.printf("%s%s = %s;\n", r.indent(r.depth), name, formatScalar(value))
}

func (r *Renderer) ArrayBegin(name []byte) {
	r.printf("%s%s[] = { ", r.indent(r.depth), name)
	r.arrayElemIndex = append(r.arrayElemIndex, 0)
}

func (r *Renderer) ArrayElement(value ArrayElement) {
	top := len(r.arrayElemIndex) - 1
	if r.arrayElemIndex[top] > 0 {
		r.printf(", ")
	}
	r.printf("%s", formatArrayElement(value))
	r.arrayElemIndex[top]++
}

func (r *Renderer) ArrayEnd() {
	r.arrayElemIndex = r.arrayElemIndex[:len(r.arrayElemIndex)-1]
	r.printf(" };\n")
}

func (r *Renderer) Define(name []byte, value int32) {
	r.printf("%s#define %s\t%d\n", r.indent(r.depth), name, value)
}

func formatScalar(v ScalarValue) string {
	switch v.Kind {
	case ScalarString:
		return fmt.Sprintf("%q", string(v.Str))
	case ScalarFloat32:
		return strconv.FormatFloat(float64(v.F32), 'f', 6, 32)
	case ScalarInt32:
		return strconv.FormatInt(int64(v.I32), 10)
	default:
		return ""
	}
}

func formatArrayElement(e ArrayElement) string {
	switch e.Kind {
	case ElementString:
		return fmt.Sprintf("%q", string(e.Str))
	case ElementFloat32:
		return strconv.FormatFloat(float64(e.F32), 'f', 6, 32)
	case ElementInt32:
		return strconv.FormatInt(int64(e.I32), 10)
	case ElementArray:
		parts := make([]string, len(e.Array))
		for i, nested := range e.Array {
			parts[i] = formatArrayElement(nested)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return ""
	}
}
