package core

import (
	"strconv"
	"strings"
	"time"
)

// ValidStartLookback is how far behind "now" a generated TransactionId's
// valid_start is set, to stay clear of node clock skew.
const ValidStartLookback = 6 * time.Second

// TransactionId correlates a transaction with its receipt/record.
type TransactionId struct {
	AccountId  EntityId
	ValidStart Timestamp
	Scheduled  bool
	Nonce      *int32 // nil when absent
}

// GenerateTransactionId builds a TransactionId for accountId using clk for
// "now", with valid_start set ValidStartLookback in the past.
func GenerateTransactionId(clk Clock, accountId EntityId) TransactionId {
	now := clk.Now().Add(-ValidStartLookback)
	return TransactionId{
		AccountId:  accountId,
		ValidStart: Timestamp{Seconds: now.Unix(), Nanos: int64(now.Nanosecond())},
	}
}

// String renders the canonical "account@seconds.nanos" form. Emission
// always uses '@', never the legacy '-' separator.
func (t TransactionId) String() string {
	return t.AccountId.String() + "@" + t.ValidStart.String()
}

// ParseTransactionId accepts both the canonical "account@seconds.nanos" form
// and the legacy "account-seconds-nanos" form.
func ParseTransactionId(s string) (TransactionId, error) {
	if idx := strings.IndexByte(s, '@'); idx >= 0 {
		return parseTransactionIdCanonical(s[:idx], s[idx+1:])
	}
	return parseTransactionIdLegacy(s)
}

func parseTransactionIdCanonical(accPart, tsPart string) (TransactionId, error) {
	acc, err := ParseEntityId(accPart)
	if err != nil {
		return TransactionId{}, ErrInvalidFormat
	}
	ts, err := ParseTimestamp(tsPart)
	if err != nil {
		return TransactionId{}, ErrInvalidFormat
	}
	return TransactionId{AccountId: acc, ValidStart: ts}, nil
}

// parseTransactionIdLegacy accepts "shard.realm.num-seconds-nanos": the
// account id itself contains dots but no '-', so the string is split on
// every '-' and must yield exactly three parts.
func parseTransactionIdLegacy(s string) (TransactionId, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return TransactionId{}, ErrInvalidFormat
	}
	acc, err := ParseEntityId(parts[0])
	if err != nil {
		return TransactionId{}, ErrInvalidFormat
	}
	sec, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return TransactionId{}, ErrInvalidFormat
	}
	nanos, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return TransactionId{}, ErrInvalidFormat
	}
	ts := Timestamp{Seconds: sec, Nanos: nanos}
	if !ts.Valid() {
		return TransactionId{}, ErrInvalidFormat
	}
	return TransactionId{AccountId: acc, ValidStart: ts}, nil
}

// encodeTransactionId writes a TransactionId nested message. Field layout:
// 1=account_id, 2=valid_start, 3=scheduled, 4=nonce (proto3 presence via the
// WriteInt/WriteBool default-omission rule; Nonce uses a distinct presence
// bit since 0 is itself a legitimate nonce value).
func encodeTransactionId(t TransactionId) []byte {
	w := NewWriter(48)
	w.WriteMessage(1, encodeEntityId(t.AccountId))
	w.WriteMessage(2, encodeTimestamp(t.ValidStart))
	w.WriteBool(3, t.Scheduled)
	if t.Nonce != nil {
		w.WriteIntPresent(4, int64(*t.Nonce))
	}
	return w.Bytes()
}

// nonceFieldIdx is the presenceSet bit tracking whether field 4 (nonce) was
// seen on the wire, distinguishing an absent nonce from an explicit zero.
const nonceFieldIdx = 0

func decodeTransactionId(b []byte) (TransactionId, error) {
	var t TransactionId
	var nonce int32
	seen := newPresenceSet(1)
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TransactionId{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case 1:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TransactionId{}, err
			}
			t.AccountId = id
		case 2:
			ts, err := decodeTimestamp(f.Bytes)
			if err != nil {
				return TransactionId{}, err
			}
			t.ValidStart = ts
		case 3:
			t.Scheduled = f.Varint != 0
		case 4:
			nonce = int32(f.Varint)
			seen.mark(nonceFieldIdx)
		}
	}
	if seen.has(nonceFieldIdx) {
		t.Nonce = &nonce
	}
	return t, nil
}
