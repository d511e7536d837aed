package core

// TransactionRecord carries everything TransactionReceipt does plus the
// consensus-level detail (hash, memo, fee, transfers) attached once a
// transaction reaches consensus.
type TransactionRecord struct {
	Receipt            TransactionReceipt
	TransactionHash    []byte
	ConsensusTimestamp Timestamp
	Memo               string
	TransactionFee     uint64
	TransferList       []Transfer
	Duplicates         []TransactionRecord
	Children           []TransactionRecord
}

const (
	recordFieldReceipt   = 1
	recordFieldHash      = 2
	recordFieldConsensus = 3
	recordFieldMemo      = 4
	recordFieldFee       = 5
	recordFieldTransfers = 6
	recordFieldDuplicate = 7
	recordFieldChild     = 8
)

func encodeTransactionRecord(rec TransactionRecord) []byte {
	w := NewWriter(96)
	w.WriteMessage(recordFieldReceipt, encodeTransactionReceipt(rec.Receipt))
	w.WriteBytes(recordFieldHash, rec.TransactionHash)
	w.WriteMessage(recordFieldConsensus, encodeTimestamp(rec.ConsensusTimestamp))
	w.WriteString(recordFieldMemo, rec.Memo)
	w.WriteUvarint(recordFieldFee, rec.TransactionFee)
	encodeTransferList(w, recordFieldTransfers, rec.TransferList)
	for _, d := range rec.Duplicates {
		w.WriteMessage(recordFieldDuplicate, encodeTransactionRecord(d))
	}
	for _, c := range rec.Children {
		w.WriteMessage(recordFieldChild, encodeTransactionRecord(c))
	}
	return w.Bytes()
}

func decodeTransactionRecord(b []byte) (TransactionRecord, error) {
	var rec TransactionRecord
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionRecord{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case recordFieldReceipt:
			recv, err := decodeTransactionReceipt(f.Bytes)
			if err != nil {
				return TransactionRecord{}, err
			}
			rec.Receipt = recv
		case recordFieldHash:
			rec.TransactionHash = append([]byte(nil), f.Bytes...)
		case recordFieldConsensus:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return TransactionRecord{}, err
			}
			rec.ConsensusTimestamp = ts
		case recordFieldMemo:
			rec.Memo = string(f.Bytes)
		case recordFieldFee:
			rec.TransactionFee = f.Varint
		case recordFieldTransfers:
			t, err := decodeTransfer(f.Bytes)
			if err != nil {
				return TransactionRecord{}, err
			}
			rec.TransferList = append(rec.TransferList, t)
		case recordFieldDuplicate:
			d, err := decodeTransactionRecord(f.Bytes)
			if err != nil {
				return TransactionRecord{}, err
			}
			rec.Duplicates = append(rec.Duplicates, d)
		case recordFieldChild:
			c, err := decodeTransactionRecord(f.Bytes)
			if err != nil {
				return TransactionRecord{}, err
			}
			rec.Children = append(rec.Children, c)
		}
	}
	return rec, nil
}
