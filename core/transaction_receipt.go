package core

// TransactionReceipt carries the consensus-assigned outcome of a submitted
// transaction. At most one Created* field is ever populated, chosen by the
// transaction kind that produced the receipt — the codec does not enforce
// mutual exclusion, it simply reports whichever fields arrived.
type TransactionReceipt struct {
	Status          int
	TransactionId   TransactionId
	CreatedAccount  *EntityId
	CreatedFile     *EntityId
	CreatedContract *EntityId
	CreatedTopic    *EntityId
	CreatedToken    *EntityId
	CreatedSchedule *EntityId
	SerialNumbers   []int64
	Duplicates      []TransactionReceipt
	Children        []TransactionReceipt
}

const (
	receiptFieldStatus        = 1
	receiptFieldTxID          = 2
	receiptFieldAccountID     = 3
	receiptFieldFileID        = 4
	receiptFieldContractID    = 5
	receiptFieldTopicID       = 6
	receiptFieldTokenID       = 7
	receiptFieldScheduleID    = 8
	receiptFieldSerialNumbers = 9
	receiptFieldDuplicates    = 10
	receiptFieldChildren      = 11
)

func encodeTransactionReceipt(r TransactionReceipt) []byte {
	w := NewWriter(64)
	w.WriteUvarint(receiptFieldStatus, uint64(r.Status))
	w.WriteMessage(receiptFieldTxID, encodeTransactionId(r.TransactionId))
	if r.CreatedAccount != nil {
		w.WriteMessage(receiptFieldAccountID, encodeEntityId(*r.CreatedAccount))
	}
	if r.CreatedFile != nil {
		w.WriteMessage(receiptFieldFileID, encodeEntityId(*r.CreatedFile))
	}
	if r.CreatedContract != nil {
		w.WriteMessage(receiptFieldContractID, encodeEntityId(*r.CreatedContract))
	}
	if r.CreatedTopic != nil {
		w.WriteMessage(receiptFieldTopicID, encodeEntityId(*r.CreatedTopic))
	}
	if r.CreatedToken != nil {
		w.WriteMessage(receiptFieldTokenID, encodeEntityId(*r.CreatedToken))
	}
	if r.CreatedSchedule != nil {
		w.WriteMessage(receiptFieldScheduleID, encodeEntityId(*r.CreatedSchedule))
	}
	if len(r.SerialNumbers) > 0 {
		w.WriteBytes(receiptFieldSerialNumbers, encodePackedVarints(r.SerialNumbers))
	}
	for _, d := range r.Duplicates {
		w.WriteMessage(receiptFieldDuplicates, encodeTransactionReceipt(d))
	}
	for _, c := range r.Children {
		w.WriteMessage(receiptFieldChildren, encodeTransactionReceipt(c))
	}
	return w.Bytes()
}

func decodeTransactionReceipt(b []byte) (TransactionReceipt, error) {
	var rec TransactionReceipt
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionReceipt{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case receiptFieldStatus:
			rec.Status = int(f.Varint)
		case receiptFieldTxID:
			id, err := decodeTransactionId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.TransactionId = id
		case receiptFieldAccountID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedAccount = &id
		case receiptFieldFileID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedFile = &id
		case receiptFieldContractID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedContract = &id
		case receiptFieldTopicID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedTopic = &id
		case receiptFieldTokenID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedToken = &id
		case receiptFieldScheduleID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.CreatedSchedule = &id
		case receiptFieldSerialNumbers:
			nums, err := decodePackedVarints(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.SerialNumbers = nums
		case receiptFieldDuplicates:
			d, err := decodeTransactionReceipt(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.Duplicates = append(rec.Duplicates, d)
		case receiptFieldChildren:
			c, err := decodeTransactionReceipt(f.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			rec.Children = append(rec.Children, c)
		}
	}
	return rec, nil
}

// encodePackedVarints writes a packed repeated int64 field's payload: a
// concatenation of plain varints with no per-element tag, as proto3 allows
// for scalar repeated fields.
func encodePackedVarints(vals []int64) []byte {
	w := &Writer{}
	for _, v := range vals {
		w.putUvarint(uint64(v))
	}
	return w.Bytes()
}

func decodePackedVarints(b []byte) ([]int64, error) {
	r := NewReader(b)
	var out []int64
	for !r.Done() {
		v, err := r.readVarintRaw()
		if err != nil {
			return nil, err
		}
		out = append(out, int64(v))
	}
	return out, nil
}
