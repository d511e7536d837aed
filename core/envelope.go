package core

// envelope.go implements the query/response wrapping conventions shared by
// every HederaProtoService and BlockNode RPC: a query is a single
// length-delimited field at a service-specific tag carrying a ResponseHeader
// plus the query body; a response reverses this, carrying the
// service-specific response at a fixed field with the payload beginning
// with a header/result sub-message.

// Query service tags.
const (
	QueryTagReceipt  uint32 = 14
	QueryTagRecord   uint32 = 15
	QueryTagSchedule uint32 = 53
)

// ResponseType mirrors the ResponseHeader.ResponseType enum; this SDK only
// ever sends ANSWER_ONLY.
const ResponseTypeAnswerOnly = 0

// responseHeaderField/cost are the ResponseHeader sub-fields used when
// encoding a query header.
const (
	responseHeaderFieldNodeTransactionPrecheckCode = 1
	responseHeaderFieldResponseType                = 2
	responseHeaderFieldCost                        = 3
)

// encodeQueryHeader writes a minimal ResponseHeader requesting ANSWER_ONLY.
func encodeQueryHeader() []byte {
	w := NewWriter(8)
	w.WriteUvarint(responseHeaderFieldResponseType, ResponseTypeAnswerOnly)
	return w.Bytes()
}

// queryHeaderFieldNum is the field number of the header sub-message inside
// every query body (field 1, by HAPI convention).
const queryHeaderFieldNum = 1

// wrapQuery encodes a query body under its service tag, nested under a
// Query envelope with the header at field 1.
func wrapQuery(serviceTag uint32, bodyFieldNum uint32, body []byte) []byte {
	inner := NewWriter(len(body) + 16)
	inner.WriteMessage(queryHeaderFieldNum, encodeQueryHeader())
	inner.WriteMessage(bodyFieldNum, body)

	outer := NewWriter(inner.Len() + 8)
	outer.WriteMessage(serviceTag, inner.Bytes())
	return outer.Bytes()
}

// unwrapQuery extracts the service-tagged sub-message bytes from a full
// Query envelope.
func unwrapQuery(serviceTag uint32, envelope []byte) ([]byte, error) {
	r := NewReader(envelope)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrMalformedResponse
		}
		if f.Number == serviceTag {
			return f.Bytes, nil
		}
	}
}

