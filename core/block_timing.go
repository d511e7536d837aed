package core

// BlockCadenceSeconds is the fixed approximate block interval used to
// convert between block index and timestamp. These conversions are
// explicitly non-authoritative approximations.
const BlockCadenceSeconds = 2

// BlockTimestamp approximates the timestamp of block index b given the
// network's start timestamp t0: (t0.seconds + 2*b, t0.nanos).
func BlockTimestamp(t0 Timestamp, b uint64) Timestamp {
	return Timestamp{
		Seconds: t0.Seconds + int64(b)*BlockCadenceSeconds,
		Nanos:   t0.Nanos,
	}
}

// BlockIndexForTimestamp approximates the block index containing ts given
// the network's start timestamp t0. If the elapsed time is negative, it
// returns 0; otherwise it floors elapsed/2.
func BlockIndexForTimestamp(t0 Timestamp, ts Timestamp) uint64 {
	elapsed := ts.Seconds - t0.Seconds
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed) / BlockCadenceSeconds
}
