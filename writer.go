package smallvec

import "io"

var (
	_ io.Writer       = (*Writer[[64]byte])(nil)
	_ io.ByteWriter   = (*Writer[[64]byte])(nil)
	_ io.StringWriter = (*Writer[[64]byte])(nil)
)

// Writer appends everything written to it to a byte vector. Writes never
// fail.
type Writer[A Array[byte]] struct {
	v *SmallVec[byte, A]
}

// NewWriter returns a Writer that appends to v.
func NewWriter[A Array[byte]](v *SmallVec[byte, A]) *Writer[A] {
	return &Writer[A]{v: v}
}

// Write implements io.Writer. It does not modify p. p may also be a view
// of the vector's own bytes; the bytes are appended correctly, and the
// view itself is invalidated by growth like any AsSlice view.
func (w *Writer[A]) Write(p []byte) (int, error) {
	w.v.ExtendFromSlice(p)
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (w *Writer[A]) WriteByte(c byte) error {
	w.v.Push(c)
	return nil
}

// WriteString implements io.StringWriter.
func (w *Writer[A]) WriteString(s string) (int, error) {
	w.v.Reserve(len(s))
	buf, lenp, _ := w.v.tripleMut()
	*lenp += copy(buf[*lenp:], s)
	return len(s), nil
}
