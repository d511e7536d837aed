package core

// TokenInfo mirrors TokenGetInfoResponse.tokenInfo.
type TokenInfo struct {
	TokenId     EntityId
	Name        string
	Symbol      string
	Treasury    EntityId
	TotalSupply uint64
	Decimals    uint32
	Deleted     bool
}

const (
	QueryTagTokenInfo     uint32 = 36
	QueryTagTokenBalances uint32 = 37

	tokenQueryFieldTokenID = 2
)

func EncodeTokenInfoQuery(tokenId EntityId) []byte {
	return wrapQuery(QueryTagTokenInfo, tokenQueryFieldTokenID, encodeEntityId(tokenId))
}

func EncodeTokenBalancesQuery(accountId EntityId) []byte {
	return wrapQuery(QueryTagTokenBalances, accountQueryFieldAccountID, encodeEntityId(accountId))
}

const (
	tokenInfoResponseTag        = 136
	tokenInfoFieldTokenID       = 1
	tokenInfoFieldName         = 2
	tokenInfoFieldSymbol       = 3
	tokenInfoFieldTreasury     = 4
	tokenInfoFieldTotalSupply  = 5
	tokenInfoFieldDecimals     = 6
	tokenInfoFieldDeleted      = 7
)

func DecodeTokenInfoResponse(envelope []byte) (TokenInfo, error) {
	inner, err := unwrapQuery(tokenInfoResponseTag, envelope)
	if err != nil {
		return TokenInfo{}, err
	}
	var info TokenInfo
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return TokenInfo{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case tokenInfoFieldTokenID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TokenInfo{}, err
			}
			info.TokenId = id
		case tokenInfoFieldName:
			info.Name = string(f.Bytes)
		case tokenInfoFieldSymbol:
			info.Symbol = string(f.Bytes)
		case tokenInfoFieldTreasury:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return TokenInfo{}, err
			}
			info.Treasury = id
		case tokenInfoFieldTotalSupply:
			info.TotalSupply = f.Varint
		case tokenInfoFieldDecimals:
			info.Decimals = uint32(f.Varint)
		case tokenInfoFieldDeleted:
			info.Deleted = f.Varint != 0
		}
	}
	return info, nil
}

const tokenBalancesResponseTag = 137

// DecodeTokenBalancesResponse returns the token balance list for an
// account, mirroring the repeated-field shape used in AccountBalance.
func DecodeTokenBalancesResponse(envelope []byte) ([]TokenBalance, error) {
	inner, err := unwrapQuery(tokenBalancesResponseTag, envelope)
	if err != nil {
		return nil, err
	}
	var out []TokenBalance
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if f.Number == 1 {
			tb, err := decodeTokenBalance(f.Bytes)
			if err != nil {
				return nil, err
			}
			out = append(out, tb)
		}
	}
	return out, nil
}
