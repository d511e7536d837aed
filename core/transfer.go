package core

// Transfer is one line of an AccountAmount list: a debit or credit against
// an account, expressed in tinybars.
type Transfer struct {
	AccountId  EntityId
	Amount     Hbar
	IsApproval bool
}

// encodeTransfer writes a Transfer nested message (1=account_id,
// 2=amount as zig-zag sint64, 3=is_approval).
func encodeTransfer(t Transfer) []byte {
	w := NewWriter(32)
	w.WriteMessage(1, encodeEntityId(t.AccountId))
	w.WriteSint(2, t.Amount.AsTinybars())
	w.WriteBool(3, t.IsApproval)
	return w.Bytes()
}

func decodeTransfer(b []byte) (Transfer, error) {
	var t Transfer
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return Transfer{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case 1:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return Transfer{}, err
			}
			t.AccountId = id
		case 2:
			t.Amount = HbarFromTinybars(ZigZagDecode(f.Varint))
		case 3:
			t.IsApproval = f.Varint != 0
		}
	}
	return t, nil
}

// encodeTransferList writes a repeated Transfer field under fieldNum, each
// element length-delimited in encounter order (repeated fields preserve
// order by construction, not by an explicit invariant of this codec).
func encodeTransferList(w *Writer, fieldNum uint32, transfers []Transfer) {
	for _, t := range transfers {
		w.WriteMessage(fieldNum, encodeTransfer(t))
	}
}
