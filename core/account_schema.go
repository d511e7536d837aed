package core

// account_schema.go implements the AccountInfo/AccountBalance records and
// the getAccountBalance/getAccountInfo/getAccountRecords query service tags.

// AccountInfo mirrors CryptoGetInfoResponse.accountInfo.
type AccountInfo struct {
	AccountId                     EntityId
	ContractAccountId             string
	Balance                       Hbar
	Memo                          string
	OwnedNfts                     int64
	MaxAutomaticTokenAssociations int32
	Deleted                       bool
}

// TokenBalance is one entry of an account's token balance list.
type TokenBalance struct {
	TokenId EntityId
	Balance uint64
}

// AccountBalance mirrors CryptoGetAccountBalanceResponse.
type AccountBalance struct {
	AccountId     EntityId
	Hbars         Hbar
	TokenBalances []TokenBalance
}

const (
	QueryTagAccountBalance uint32 = 9
	QueryTagAccountInfo    uint32 = 10
	QueryTagAccountRecords uint32 = 8
)

const accountQueryFieldAccountID = 2

// EncodeAccountBalanceQuery/EncodeAccountInfoQuery/EncodeAccountRecordsQuery
// each wrap an AccountID body under the matching service tag.
func EncodeAccountBalanceQuery(accountId EntityId) []byte {
	return wrapQuery(QueryTagAccountBalance, accountQueryFieldAccountID, encodeEntityId(accountId))
}

func EncodeAccountInfoQuery(accountId EntityId) []byte {
	return wrapQuery(QueryTagAccountInfo, accountQueryFieldAccountID, encodeEntityId(accountId))
}

func EncodeAccountRecordsQuery(accountId EntityId) []byte {
	return wrapQuery(QueryTagAccountRecords, accountQueryFieldAccountID, encodeEntityId(accountId))
}

const (
	accountBalanceResponseTag        = 109
	accountBalanceFieldAccountID     = 1
	accountBalanceFieldHbars         = 2
	accountBalanceFieldTokenBalances = 3
)

func DecodeAccountBalanceResponse(envelope []byte) (AccountBalance, error) {
	inner, err := unwrapQuery(accountBalanceResponseTag, envelope)
	if err != nil {
		return AccountBalance{}, err
	}
	var bal AccountBalance
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return AccountBalance{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case accountBalanceFieldAccountID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return AccountBalance{}, err
			}
			bal.AccountId = id
		case accountBalanceFieldHbars:
			bal.Hbars = HbarFromTinybars(int64(f.Varint))
		case accountBalanceFieldTokenBalances:
			tb, err := decodeTokenBalance(f.Bytes)
			if err != nil {
				return AccountBalance{}, err
			}
			bal.TokenBalances = append(bal.TokenBalances, tb)
		}
	}
	return bal, nil
}

func decodeTokenBalance(b []byte) (TokenBalance, error) {
	var tb TokenBalance
	r := NewReader(b)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TokenBalance{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case 1:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TokenBalance{}, err
			}
			tb.TokenId = id
		case 2:
			tb.Balance = f.Varint
		}
	}
	return tb, nil
}

const (
	accountInfoResponseTag             = 110
	accountInfoFieldAccountID          = 1
	accountInfoFieldContractAccountID  = 2
	accountInfoFieldBalance            = 3
	accountInfoFieldMemo               = 4
	accountInfoFieldOwnedNfts          = 5
	accountInfoFieldMaxAutoAssociation = 6
	accountInfoFieldDeleted            = 7
)

func DecodeAccountInfoResponse(envelope []byte) (AccountInfo, error) {
	inner, err := unwrapQuery(accountInfoResponseTag, envelope)
	if err != nil {
		return AccountInfo{}, err
	}
	var info AccountInfo
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return AccountInfo{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case accountInfoFieldAccountID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return AccountInfo{}, err
			}
			info.AccountId = id
		case accountInfoFieldContractAccountID:
			info.ContractAccountId = string(f.Bytes)
		case accountInfoFieldBalance:
			info.Balance = HbarFromTinybars(int64(f.Varint))
		case accountInfoFieldMemo:
			info.Memo = string(f.Bytes)
		case accountInfoFieldOwnedNfts:
			info.OwnedNfts = ZigZagDecode(f.Varint)
		case accountInfoFieldMaxAutoAssociation:
			info.MaxAutomaticTokenAssociations = int32(ZigZagDecode(f.Varint))
		case accountInfoFieldDeleted:
			info.Deleted = f.Varint != 0
		}
	}
	return info, nil
}

const accountRecordsResponseTag = 108

// DecodeAccountRecordsResponse returns the list of TransactionRecords for
// an account, each encoded as a repeated field-2 sub-message.
func DecodeAccountRecordsResponse(envelope []byte) ([]TransactionRecord, error) {
	inner, err := unwrapQuery(accountRecordsResponseTag, envelope)
	if err != nil {
		return nil, err
	}
	var out []TransactionRecord
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if f.Number == 2 {
			rec, err := decodeTransactionRecord(f.Bytes)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}
