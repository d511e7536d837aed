package core

// wire_writer.go implements the append-only writer side of the codec.
// Fields must be written in ascending field-number order by callers (every
// schema encoder in this package does so) to produce a deterministic,
// canonical encoding.

// Writer accumulates an owning byte buffer. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with cap bytes pre-allocated.
func NewWriter(cap int) *Writer {
	return &Writer{buf: make([]byte, 0, cap)}
}

// Bytes returns the accumulated buffer. The caller owns the returned slice;
// the Writer must not be reused after calling Bytes if the caller retains
// the slice across further writes (subsequent writes may reallocate).
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) putTag(fieldNum uint32, wt WireType) {
	w.putUvarint(uint64(fieldNum)<<3 | uint64(wt))
}

func (w *Writer) putUvarint(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

// WriteUvarint writes an unsigned varint field (proto3 uint32/uint64/enum).
func (w *Writer) WriteUvarint(fieldNum uint32, v uint64) {
	if v == 0 {
		return // proto3 default-value omission
	}
	w.putTag(fieldNum, WireVarint)
	w.putUvarint(v)
}

// WriteInt writes a signed varint field using standard proto3 semantics
// (two's complement sign-extended to 64 bits, not zig-zag) — the encoding
// used for int32/int64 fields.
func (w *Writer) WriteInt(fieldNum uint32, v int64) {
	if v == 0 {
		return
	}
	w.putTag(fieldNum, WireVarint)
	w.putUvarint(uint64(v))
}

// WriteSint writes a signed varint field using zig-zag encoding — the
// encoding used for sint32/sint64 fields, e.g. Transfer.amount.
func (w *Writer) WriteSint(fieldNum uint32, v int64) {
	if v == 0 {
		return
	}
	w.putTag(fieldNum, WireVarint)
	w.putUvarint(zigZagEncode(v))
}

// WriteIntPresent writes a signed varint field unconditionally, even when v
// is zero. Used for proto3 "optional" scalars (explicit presence via a
// synthetic oneof on the wire) where the caller has already decided the
// field is present — e.g. TransactionId.nonce.
func (w *Writer) WriteIntPresent(fieldNum uint32, v int64) {
	w.putTag(fieldNum, WireVarint)
	w.putUvarint(uint64(v))
}

// WriteBool writes a bool field, omitted when false.
func (w *Writer) WriteBool(fieldNum uint32, v bool) {
	if !v {
		return
	}
	w.putTag(fieldNum, WireVarint)
	w.putUvarint(1)
}

// WriteBytes writes a length-delimited field, omitted when b is empty.
func (w *Writer) WriteBytes(fieldNum uint32, b []byte) {
	if len(b) == 0 {
		return
	}
	w.putTag(fieldNum, WireLengthDelimited)
	w.putUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteString writes a length-delimited string field, omitted when s is empty.
func (w *Writer) WriteString(fieldNum uint32, s string) {
	if s == "" {
		return
	}
	w.WriteBytes(fieldNum, []byte(s))
}

// WriteMessage writes a length-delimited nested-message field using the
// already-encoded bytes of the nested message. Unlike WriteBytes, an empty
// nested message is still written: a present sub-message whose own fields
// are all default encodes to zero bytes, and the schema encoders decide
// presence before calling this.
func (w *Writer) WriteMessage(fieldNum uint32, encoded []byte) {
	w.putTag(fieldNum, WireLengthDelimited)
	w.putUvarint(uint64(len(encoded)))
	w.buf = append(w.buf, encoded...)
}

// zigZagEncode maps a signed 64-bit value to its zig-zag unsigned encoding:
// (n << 1) XOR (n >> 63).
func zigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}
