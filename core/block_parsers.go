package core

// block_parsers.go implements the on-demand typed parsers for each
// BlockItem variant. Every parsed record here fully owns its byte buffers —
// no field borrows the caller's input slice, unlike the zero-copy wire
// Reader itself.

// EventTransaction is the parsed form of an ItemEventTransaction payload.
type EventTransaction struct {
	Memo      string
	Transfers []Transfer
}

const (
	eventTxFieldMemo      = 1
	eventTxFieldTransfers = 2
)

// ParseEventTransaction parses item.Payload as an EventTransaction. Calling
// this on an item whose Type is not ItemEventTransaction yields
// ErrWrongItemType.
func ParseEventTransaction(item BlockItem) (EventTransaction, error) {
	if item.Type != ItemEventTransaction {
		return EventTransaction{}, ErrWrongItemType
	}
	var et EventTransaction
	r := NewReader(item.Payload)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return EventTransaction{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case eventTxFieldMemo:
			et.Memo = string(f.Bytes) // owned copy: string() always copies
		case eventTxFieldTransfers:
			t, err := decodeTransfer(f.Bytes)
			if err != nil {
				return EventTransaction{}, err
			}
			et.Transfers = append(et.Transfers, t)
		}
	}
	return et, nil
}

// TransactionResult is the parsed form of an ItemTransactionResult payload.
type TransactionResult struct {
	Status             int
	ConsensusTimestamp Timestamp
}

const (
	txResultFieldStatus    = 1
	txResultFieldConsensus = 2
)

func ParseTransactionResult(item BlockItem) (TransactionResult, error) {
	if item.Type != ItemTransactionResult {
		return TransactionResult{}, ErrWrongItemType
	}
	var tr TransactionResult
	r := NewReader(item.Payload)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionResult{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case txResultFieldStatus:
			tr.Status = int(f.Varint)
		case txResultFieldConsensus:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return TransactionResult{}, err
			}
			tr.ConsensusTimestamp = ts
		}
	}
	return tr, nil
}

// TransactionOutput is the parsed form of an ItemTransactionOutput payload.
type TransactionOutput struct {
	Receipt TransactionReceipt
}

const txOutputFieldReceipt = 1

func ParseTransactionOutput(item BlockItem) (TransactionOutput, error) {
	if item.Type != ItemTransactionOutput {
		return TransactionOutput{}, ErrWrongItemType
	}
	var out TransactionOutput
	r := NewReader(item.Payload)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionOutput{}, err
		}
		if !ok {
			break
		}
		if f.Number == txOutputFieldReceipt {
			rec, err := decodeTransactionReceipt(f.Bytes)
			if err != nil {
				return TransactionOutput{}, err
			}
			out.Receipt = rec
		}
	}
	return out, nil
}

// StateChange is one entry of a StateChanges item. Its schema is ad hoc and
// provisional: field 1 is a Timestamp, field 2 is a change-type code, so the
// raw bytes are preserved alongside the two known fields until an
// authoritative schema is available.
type StateChange struct {
	Timestamp  Timestamp
	ChangeType int
	Raw        []byte
}

const (
	stateChangeFieldTimestamp  = 1
	stateChangeFieldChangeType = 2
)

// ParseStateChanges parses item.Payload as a sequence of StateChange
// entries under a shared repeated field number.
func ParseStateChanges(item BlockItem) ([]StateChange, error) {
	if item.Type != ItemStateChanges {
		return nil, ErrWrongItemType
	}
	const stateChangesFieldEntry = 1
	r := NewReader(item.Payload)
	var out []StateChange
	for {
		f, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if f.Number != stateChangesFieldEntry {
			continue
		}
		sc, err := parseStateChange(f.Bytes)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func parseStateChange(raw []byte) (StateChange, error) {
	sc := StateChange{Raw: append([]byte(nil), raw...)}
	r := NewReader(raw)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return StateChange{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case stateChangeFieldTimestamp:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return StateChange{}, err
			}
			sc.Timestamp = ts
		case stateChangeFieldChangeType:
			sc.ChangeType = int(f.Varint)
		}
	}
	return sc, nil
}
