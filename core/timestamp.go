package core

import (
	"strconv"
	"strings"
)

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond = 1_000_000_000

// Timestamp is a consensus or wall-clock instant: whole seconds plus a
// nanosecond remainder, 0 <= Nanos < 10^9.
type Timestamp struct {
	Seconds int64
	Nanos   int64
}

// Valid reports whether Nanos is within [0, 10^9).
func (t Timestamp) Valid() bool {
	return t.Nanos >= 0 && t.Nanos < NanosPerSecond
}

// String renders "seconds.nanos" decimal form.
func (t Timestamp) String() string {
	return strconv.FormatInt(t.Seconds, 10) + "." + strconv.FormatInt(t.Nanos, 10)
}

// ParseTimestamp parses "seconds.nanos". A missing dot, trailing dot, or
// nanos outside [0, 10^9) yields ErrInvalidFormat.
func ParseTimestamp(s string) (Timestamp, error) {
	idx := strings.IndexByte(s, '.')
	if idx < 0 || idx == len(s)-1 {
		return Timestamp{}, ErrInvalidFormat
	}
	secPart, nanoPart := s[:idx], s[idx+1:]
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return Timestamp{}, ErrInvalidFormat
	}
	nanos, err := strconv.ParseInt(nanoPart, 10, 64)
	if err != nil {
		return Timestamp{}, ErrInvalidFormat
	}
	t := Timestamp{Seconds: sec, Nanos: nanos}
	if !t.Valid() {
		return Timestamp{}, ErrInvalidFormat
	}
	return t, nil
}

// encodeTimestamp writes a Timestamp nested message (1=seconds, 2=nanos).
func encodeTimestamp(t Timestamp) []byte {
	w := NewWriter(16)
	w.WriteInt(1, t.Seconds)
	w.WriteInt(2, t.Nanos)
	return w.Bytes()
}

// decodeTimestamp parses a Timestamp nested message, checking the
// 0 <= nanos < 10^9 invariant.
func decodeTimestamp(b []byte) (Timestamp, error) {
	var t Timestamp
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return Timestamp{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case 1:
			t.Seconds = int64(f.Varint)
		case 2:
			t.Nanos = int64(f.Varint)
		}
	}
	if !t.Valid() {
		return Timestamp{}, ErrMalformedResponse
	}
	return t, nil
}
