package core

// ContractInfo mirrors ContractGetInfoResponse.contractInfo (ADDED record).
type ContractInfo struct {
	ContractId    EntityId
	AccountId     EntityId
	AdminKeyPresent bool
	Balance       Hbar
	Memo          string
	IsDeleted     bool
}

// ContractCallResult mirrors ContractCallLocalResponse.functionResult.
type ContractCallResult struct {
	ContractId   EntityId
	Result       []byte
	GasUsed      uint64
	ErrorMessage string
}

const (
	QueryTagContractInfo uint32 = 21
	QueryTagContractCall uint32 = 22

	contractQueryFieldContractID = 2
)

func EncodeContractInfoQuery(contractId EntityId) []byte {
	return wrapQuery(QueryTagContractInfo, contractQueryFieldContractID, encodeEntityId(contractId))
}

// EncodeContractCallQuery builds a ContractCallLocalQuery with the given
// contract id, call parameters, and gas limit.
func EncodeContractCallQuery(contractId EntityId, functionParameters []byte, gas uint64) []byte {
	body := NewWriter(len(functionParameters) + 32)
	body.WriteMessage(1, encodeEntityId(contractId))
	body.WriteUvarint(2, gas)
	body.WriteBytes(3, functionParameters)
	return wrapQuery(QueryTagContractCall, 4, body.Bytes())
}

const (
	contractInfoResponseTag       = 121
	contractInfoFieldContractID   = 1
	contractInfoFieldAccountID    = 2
	contractInfoFieldAdminKey     = 3
	contractInfoFieldBalance      = 4
	contractInfoFieldMemo         = 5
	contractInfoFieldIsDeleted    = 6
)

func DecodeContractInfoResponse(envelope []byte) (ContractInfo, error) {
	inner, err := unwrapQuery(contractInfoResponseTag, envelope)
	if err != nil {
		return ContractInfo{}, err
	}
	var info ContractInfo
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return ContractInfo{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case contractInfoFieldContractID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ContractInfo{}, err
			}
			info.ContractId = id
		case contractInfoFieldAccountID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ContractInfo{}, err
			}
			info.AccountId = id
		case contractInfoFieldAdminKey:
			info.AdminKeyPresent = len(f.Bytes) > 0
		case contractInfoFieldBalance:
			info.Balance = HbarFromTinybars(int64(f.Varint))
		case contractInfoFieldMemo:
			info.Memo = string(f.Bytes)
		case contractInfoFieldIsDeleted:
			info.IsDeleted = f.Varint != 0
		}
	}
	return info, nil
}

const (
	contractCallResponseTag        = 122
	contractCallFieldContractID    = 1
	contractCallFieldResult        = 2
	contractCallFieldGasUsed       = 3
	contractCallFieldErrorMessage  = 4
)

func DecodeContractCallResponse(envelope []byte) (ContractCallResult, error) {
	inner, err := unwrapQuery(contractCallResponseTag, envelope)
	if err != nil {
		return ContractCallResult{}, err
	}
	var res ContractCallResult
	r := NewReader(inner)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return ContractCallResult{}, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case contractCallFieldContractID:
			id, err := decodeEntityId(f.Bytes)
			if err != nil {
				return ContractCallResult{}, err
			}
			res.ContractId = id
		case contractCallFieldResult:
			res.Result = append([]byte(nil), f.Bytes...)
		case contractCallFieldGasUsed:
			res.GasUsed = f.Varint
		case contractCallFieldErrorMessage:
			res.ErrorMessage = string(f.Bytes)
		}
	}
	return res, nil
}
