package bytebuf

import "io"

// Reader exposes a ByteArray as a sequential byte-input stream for
// interop with stream-based consumers. Reads delegate to the buffer's
// relative gets, so the buffer's read cursor advances with the stream.
type Reader struct {
	b *ByteArray
}

// NewReader wraps a buffer as an io.Reader.
func NewReader(b *ByteArray) *Reader {
	return &Reader{b: b}
}

// Available returns the bytes remaining before end-of-stream.
func (r *Reader) Available() int {
	return r.b.Readable()
}

// Read implements the [io.Reader] interface. It copies up to len(p)
// of the remaining bytes and reports io.EOF once the read cursor has
// reached the limit.
func (r *Reader) Read(p []byte) (int, error) {
	avail := r.b.Readable()
	if avail == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := min(len(p), avail)
	if err := r.b.read(p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// ReadByte implements the [io.ByteReader] interface.
func (r *Reader) ReadByte() (byte, error) {
	if r.b.Readable() == 0 {
		return 0, io.EOF
	}
	return r.b.GetByte()
}

// WriteTo implements the [io.WriterTo] interface for efficient copying.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	rest, err := r.b.GetBytes(r.b.Readable())
	if err != nil {
		return 0, err
	}
	n, err := w.Write(rest)
	return int64(n), err
}

// Writer exposes a ByteArray as a byte-output stream. Writes delegate
// to the buffer's relative puts and grow the buffer per its growth
// policy; a write that cannot grow reports the buffer's overflow error.
type Writer struct {
	b *ByteArray
}

// NewWriter wraps a buffer as an io.Writer.
func NewWriter(b *ByteArray) *Writer {
	return &Writer{b: b}
}

// Write implements the [io.Writer] interface.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.b.PutBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte implements the [io.ByteWriter] interface.
func (w *Writer) WriteByte(c byte) error {
	return w.b.PutByte(c)
}

// WriteString implements the [io.StringWriter] interface. The string
// is written raw, without charset conversion or terminator.
func (w *Writer) WriteString(s string) (int, error) {
	if err := w.b.PutBytes([]byte(s)); err != nil {
		return 0, err
	}
	return len(s), nil
}
