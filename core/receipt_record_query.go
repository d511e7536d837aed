package core

const receiptRecordQueryFieldTxID = 2

// EncodeTransactionGetReceiptQuery/EncodeTransactionGetRecordQuery wrap a
// TransactionId body under the receipt/record service tags (14/15).
func EncodeTransactionGetReceiptQuery(txID TransactionId) []byte {
	return wrapQuery(QueryTagReceipt, receiptRecordQueryFieldTxID, encodeTransactionId(txID))
}

func EncodeTransactionGetRecordQuery(txID TransactionId) []byte {
	return wrapQuery(QueryTagRecord, receiptRecordQueryFieldTxID, encodeTransactionId(txID))
}

const (
	receiptResponseTag    = 114
	receiptResponseField  = 2
	recordResponseTag     = 115
	recordResponseField   = 2
)

// DecodeTransactionGetReceiptResponse returns the nested TransactionReceipt.
func DecodeTransactionGetReceiptResponse(envelope []byte) (TransactionReceipt, error) {
	inner, err := unwrapQuery(receiptResponseTag, envelope)
	if err != nil {
		return TransactionReceipt{}, err
	}
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionReceipt{}, err
		}
		if !ok {
			break
		}
		if f.Number == receiptResponseField {
			return decodeTransactionReceipt(f.Bytes)
		}
	}
	return TransactionReceipt{}, ErrMalformedResponse
}

// DecodeTransactionGetRecordResponse returns the nested TransactionRecord.
func DecodeTransactionGetRecordResponse(envelope []byte) (TransactionRecord, error) {
	inner, err := unwrapQuery(recordResponseTag, envelope)
	if err != nil {
		return TransactionRecord{}, err
	}
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionRecord{}, err
		}
		if !ok {
			break
		}
		if f.Number == recordResponseField {
			return decodeTransactionRecord(f.Bytes)
		}
	}
	return TransactionRecord{}, ErrMalformedResponse
}

// PrecheckResponse is the bare TransactionResponse returned by submit:
// field 1 = precheck code, field 2 = cost. This is not wrapped in the
// query/response envelope convention since submit is not a query, and its
// field layout is its own — not the ResponseHeader sub-message shape used
// inside query responses.
type PrecheckResponse struct {
	PrecheckCode int
	Cost         uint64
}

const (
	precheckResponseFieldCode = 1
	precheckResponseFieldCost = 2
)

// DecodePrecheckResponse parses a TransactionResponse directly: field 1 is
// the node precheck code, field 2 is the query cost in tinybars.
func DecodePrecheckResponse(b []byte) (PrecheckResponse, error) {
	var pr PrecheckResponse
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return PrecheckResponse{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case precheckResponseFieldCode:
			pr.PrecheckCode = int(f.Varint)
		case precheckResponseFieldCost:
			pr.Cost = f.Varint
		}
	}
	return pr, nil
}
