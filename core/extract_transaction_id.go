package core

// ExtractTransactionId inspects a raw, opaque transaction byte blob and
// recovers its TransactionId, needed to correlate a submitted transaction
// with its later receipt/record. It never errors: an unrecognized or
// absent shape simply yields (TransactionId{}, false).
//
// Candidate top-level fields, tried in the order they appear on the wire: 1
// and 4 are transaction body bytes directly; 2 is a signed body alongside a
// signature map (the body occupies the same sub-slice shape as 1/4); 5 is
// a SignedTransaction wrapper whose own field 1 is the body bytes. Each
// candidate is recursed into looking for a TransactionId sub-message (field
// 1 of the body); the first candidate that yields one wins, and a candidate
// that yields none is skipped.
func ExtractTransactionId(raw []byte) (TransactionId, bool) {
	r := NewReader(raw)
	for {
		f, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		switch f.Number {
		case 1, 4:
			if id, found := extractTxIDFromBody(f.Bytes); found {
				return id, true
			}
		case 2:
			if id, found := extractTxIDFromBody(f.Bytes); found {
				return id, true
			}
		case 5:
			if id, found := extractTxIDFromSignedTransaction(f.Bytes); found {
				return id, true
			}
		}
	}
	return TransactionId{}, false
}

// extractTxIDFromBody reads field 1 of a TransactionBody, which is the
// TransactionId sub-message.
func extractTxIDFromBody(body []byte) (TransactionId, bool) {
	r := NewReader(body)
	for {
		f, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		if f.Number == 1 {
			id, err := decodeTransactionId(f.Bytes)
			if err != nil {
				return TransactionId{}, false
			}
			return id, true
		}
	}
	return TransactionId{}, false
}

// extractTxIDFromSignedTransaction unwraps a SignedTransaction (field 1 =
// body bytes, field 2 = SignatureMap) and recurses into the body.
func extractTxIDFromSignedTransaction(signed []byte) (TransactionId, bool) {
	r := NewReader(signed)
	for {
		f, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		if f.Number == 1 {
			return extractTxIDFromBody(f.Bytes)
		}
	}
	return TransactionId{}, false
}
