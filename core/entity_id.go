package core

import (
	"strconv"
	"strings"
)

// EntityId is the (shard, realm, num) triple shared by every Hedera entity
// kind (account, token, contract, topic, file, schedule). The codec treats
// all specializations identically; the distinction is purely semantic at
// the caller's layer.
type EntityId struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// Compare implements the total lexicographic order over (shard, realm, num).
func (e EntityId) Compare(o EntityId) int {
	if e.Shard != o.Shard {
		return cmpUint64(e.Shard, o.Shard)
	}
	if e.Realm != o.Realm {
		return cmpUint64(e.Realm, o.Realm)
	}
	return cmpUint64(e.Num, o.Num)
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the canonical "shard.realm.num" form.
func (e EntityId) String() string {
	return strconv.FormatUint(e.Shard, 10) + "." +
		strconv.FormatUint(e.Realm, 10) + "." +
		strconv.FormatUint(e.Num, 10)
}

// ParseEntityId parses "shard.realm.num" decimal form. Any deviation — wrong
// number of dots, non-decimal digits, or surrounding whitespace — yields
// ErrInvalidFormat.
func ParseEntityId(s string) (EntityId, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return EntityId{}, ErrInvalidFormat
	}
	var nums [3]uint64
	for i, p := range parts {
		if p == "" || strings.TrimSpace(p) != p {
			return EntityId{}, ErrInvalidFormat
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return EntityId{}, ErrInvalidFormat
			}
		}
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return EntityId{}, ErrInvalidFormat
		}
		nums[i] = n
	}
	return EntityId{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

// encodeEntityId writes an EntityId as a nested message with the Hedera
// HAPI field layout (1=shard, 2=realm, 3=num), in canonical ascending order.
func encodeEntityId(id EntityId) []byte {
	w := NewWriter(24)
	w.WriteUvarint(1, id.Shard)
	w.WriteUvarint(2, id.Realm)
	w.WriteUvarint(3, id.Num)
	return w.Bytes()
}

// decodeEntityId parses an EntityId's nested-message bytes, ignoring any
// unknown field numbers for forward compatibility.
func decodeEntityId(b []byte) (EntityId, error) {
	var id EntityId
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return EntityId{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case 1:
			id.Shard = f.Varint
		case 2:
			id.Realm = f.Varint
		case 3:
			id.Num = f.Varint
		}
	}
	return id, nil
}
