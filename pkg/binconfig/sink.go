package binconfig

// Sink consumes the structured event stream a ConfigDecoder produces, in
// strict input-stream order. A decoder guarantees correct EnterClass/
// LeaveClass nesting and does not reinterpret or buffer events beyond what
// a single recursive call needs; formatting and storage are entirely the
// sink's responsibility.
type Sink interface {
	EnterClass(name, parent []byte)
	LeaveClass()
	Scalar(name []byte, value ScalarValue)
	ArrayBegin(name []byte)
	ArrayElement(value ArrayElement)
	ArrayEnd()
	Define(name []byte, value int32)
}
