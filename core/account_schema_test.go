package core

import "testing"

func TestAccountInfoResponseRoundTrip(t *testing.T) {
	info := AccountInfo{
		AccountId:                     EntityId{0, 0, 10},
		ContractAccountId:             "0x0000000000000000000000000000000000000a",
		Balance:                       HbarFromTinybars(1000),
		Memo:                          "hello",
		OwnedNfts:                     3,
		MaxAutomaticTokenAssociations: 2,
		Deleted:                       false,
	}
	body := NewWriter(64)
	body.WriteMessage(accountInfoFieldAccountID, encodeEntityId(info.AccountId))
	body.WriteString(accountInfoFieldContractAccountID, info.ContractAccountId)
	body.WriteUvarint(accountInfoFieldBalance, uint64(info.Balance.AsTinybars()))
	body.WriteString(accountInfoFieldMemo, info.Memo)
	body.WriteSint(accountInfoFieldOwnedNfts, info.OwnedNfts)
	body.WriteSint(accountInfoFieldMaxAutoAssociation, int64(info.MaxAutomaticTokenAssociations))

	outer := NewWriter(96)
	outer.WriteMessage(accountInfoResponseTag, body.Bytes())

	got, err := DecodeAccountInfoResponse(outer.Bytes())
	if err != nil {
		t.Fatalf("DecodeAccountInfoResponse: %v", err)
	}
	if got.AccountId != info.AccountId {
		t.Fatalf("got account id %+v, want %+v", got.AccountId, info.AccountId)
	}
	if got.OwnedNfts != 3 {
		t.Fatalf("got owned_nfts=%d, want 3", got.OwnedNfts)
	}
	if got.MaxAutomaticTokenAssociations != 2 {
		t.Fatalf("got max_auto_associations=%d, want 2", got.MaxAutomaticTokenAssociations)
	}
}

func TestTokenBalanceRoundTrip(t *testing.T) {
	tb := TokenBalance{TokenId: EntityId{0, 0, 55}, Balance: 9000}
	body := NewWriter(16)
	body.WriteMessage(1, encodeEntityId(tb.TokenId))
	body.WriteUvarint(2, tb.Balance)

	got, err := decodeTokenBalance(body.Bytes())
	if err != nil {
		t.Fatalf("decodeTokenBalance: %v", err)
	}
	if got != tb {
		t.Fatalf("got %+v, want %+v", got, tb)
	}
}

func TestTokenInfoResponseRoundTrip(t *testing.T) {
	info := TokenInfo{
		TokenId:     EntityId{0, 0, 200},
		Name:        "Example Token",
		Symbol:      "EX",
		Treasury:    EntityId{0, 0, 2},
		TotalSupply: 1_000_000,
		Decimals:    8,
	}
	body := NewWriter(64)
	body.WriteMessage(tokenInfoFieldTokenID, encodeEntityId(info.TokenId))
	body.WriteString(tokenInfoFieldName, info.Name)
	body.WriteString(tokenInfoFieldSymbol, info.Symbol)
	body.WriteMessage(tokenInfoFieldTreasury, encodeEntityId(info.Treasury))
	body.WriteUvarint(tokenInfoFieldTotalSupply, info.TotalSupply)
	body.WriteUvarint(tokenInfoFieldDecimals, uint64(info.Decimals))

	outer := NewWriter(96)
	outer.WriteMessage(tokenInfoResponseTag, body.Bytes())

	got, err := DecodeTokenInfoResponse(outer.Bytes())
	if err != nil {
		t.Fatalf("DecodeTokenInfoResponse: %v", err)
	}
	if got.Name != info.Name || got.Symbol != info.Symbol {
		t.Fatalf("got %+v, want %+v", got, info)
	}
	if got.TotalSupply != info.TotalSupply {
		t.Fatalf("got total_supply=%d, want %d", got.TotalSupply, info.TotalSupply)
	}
}

func TestContractCallResponseRoundTrip(t *testing.T) {
	res := ContractCallResult{
		ContractId: EntityId{0, 0, 300},
		Result:     []byte{0xDE, 0xAD, 0xBE, 0xEF},
		GasUsed:    21000,
	}
	body := NewWriter(64)
	body.WriteMessage(contractCallFieldContractID, encodeEntityId(res.ContractId))
	body.WriteBytes(contractCallFieldResult, res.Result)
	body.WriteUvarint(contractCallFieldGasUsed, res.GasUsed)

	outer := NewWriter(96)
	outer.WriteMessage(contractCallResponseTag, body.Bytes())

	got, err := DecodeContractCallResponse(outer.Bytes())
	if err != nil {
		t.Fatalf("DecodeContractCallResponse: %v", err)
	}
	if string(got.Result) != string(res.Result) {
		t.Fatalf("got result=%x, want %x", got.Result, res.Result)
	}
	if got.GasUsed != res.GasUsed {
		t.Fatalf("got gas_used=%d, want %d", got.GasUsed, res.GasUsed)
	}
}
