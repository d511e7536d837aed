package core

// ScheduleInfo describes a scheduled transaction's metadata as returned by
// a ScheduleGetInfo query.
type ScheduleInfo struct {
	ScheduleId             EntityId
	CreatorAccountId       *EntityId
	ExecutionTime          *Timestamp
	PayerAccountId         *EntityId
	ExpirationTime         *Timestamp
	Memo                   string
	DeletionTime           *Timestamp
	ScheduledTransactionId *TransactionId
	LedgerId               []byte
	WaitForExpiry          bool
}

const (
	scheduleFieldID            = 1
	scheduleFieldCreator       = 2
	scheduleFieldExecutionTime = 3
	scheduleFieldPayer         = 4
	scheduleFieldExpiration    = 5
	scheduleFieldMemo          = 6
	scheduleFieldDeletion      = 7
	scheduleFieldScheduledTxID = 8
	scheduleFieldLedgerID      = 9
	scheduleFieldWaitExpiry    = 10
)

func encodeScheduleInfo(s ScheduleInfo) []byte {
	w := NewWriter(96)
	w.WriteMessage(scheduleFieldID, encodeEntityId(s.ScheduleId))
	if s.CreatorAccountId != nil {
		w.WriteMessage(scheduleFieldCreator, encodeEntityId(*s.CreatorAccountId))
	}
	if s.ExecutionTime != nil {
		w.WriteMessage(scheduleFieldExecutionTime, encodeTimestamp(*s.ExecutionTime))
	}
	if s.PayerAccountId != nil {
		w.WriteMessage(scheduleFieldPayer, encodeEntityId(*s.PayerAccountId))
	}
	if s.ExpirationTime != nil {
		w.WriteMessage(scheduleFieldExpiration, encodeTimestamp(*s.ExpirationTime))
	}
	w.WriteString(scheduleFieldMemo, s.Memo)
	if s.DeletionTime != nil {
		w.WriteMessage(scheduleFieldDeletion, encodeTimestamp(*s.DeletionTime))
	}
	if s.ScheduledTransactionId != nil {
		w.WriteMessage(scheduleFieldScheduledTxID, encodeTransactionId(*s.ScheduledTransactionId))
	}
	w.WriteBytes(scheduleFieldLedgerID, s.LedgerId)
	w.WriteBool(scheduleFieldWaitExpiry, s.WaitForExpiry)
	return w.Bytes()
}

func decodeScheduleInfo(b []byte) (ScheduleInfo, error) {
	var s ScheduleInfo
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return ScheduleInfo{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case scheduleFieldID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.ScheduleId = id
		case scheduleFieldCreator:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.CreatorAccountId = &id
		case scheduleFieldExecutionTime:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.ExecutionTime = &ts
		case scheduleFieldPayer:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.PayerAccountId = &id
		case scheduleFieldExpiration:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.ExpirationTime = &ts
		case scheduleFieldMemo:
			s.Memo = string(f.Bytes)
		case scheduleFieldDeletion:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.DeletionTime = &ts
		case scheduleFieldScheduledTxID:
			id, err := decodeTransactionId(f.Bytes)
			if err != nil {
				return ScheduleInfo{}, err
			}
			s.ScheduledTransactionId = &id
		case scheduleFieldLedgerID:
			s.LedgerId = append([]byte(nil), f.Bytes...)
		case scheduleFieldWaitExpiry:
			s.WaitForExpiry = f.Varint != 0
		}
	}
	return s, nil
}
