package core

// responseCodeLabels is the closed table mapping the Hedera response-code
// enumeration to its diagnostic label. It must be reproducible bit-for-bit
// from the protocol's ResponseCodeEnum; labels are used only for
// diagnostics, never for control flow.
var responseCodeLabels = map[int]string{
	0:   "OK",
	1:   "INVALID_TRANSACTION",
	2:   "PAYER_ACCOUNT_NOT_FOUND",
	3:   "INVALID_NODE_ACCOUNT",
	4:   "TRANSACTION_EXPIRED",
	5:   "INVALID_TRANSACTION_START",
	6:   "INVALID_TRANSACTION_DURATION",
	7:   "INVALID_SIGNATURE",
	8:   "MEMO_TOO_LONG",
	9:   "INSUFFICIENT_TX_FEE",
	10:  "INSUFFICIENT_PAYER_BALANCE",
	11:  "DUPLICATE_TRANSACTION",
	12:  "BUSY",
	13:  "NOT_SUPPORTED",
	14:  "INVALID_FILE_ID",
	15:  "INVALID_ACCOUNT_ID",
	16:  "INVALID_CONTRACT_ID",
	17:  "INVALID_TRANSACTION_ID",
	18:  "RECEIPT_NOT_FOUND",
	19:  "RECORD_NOT_FOUND",
	20:  "INVALID_SOLIDITY_ID",
	21:  "UNKNOWN",
	22:  "SUCCESS",
	23:  "FAIL_INVALID",
	24:  "FAIL_FEE",
	25:  "FAIL_BALANCE",
	26:  "KEY_REQUIRED",
	27:  "BAD_ENCODING",
	28:  "INSUFFICIENT_ACCOUNT_BALANCE",
	29:  "INVALID_SOLIDITY_ADDRESS",
	30:  "INSUFFICIENT_GAS",
	31:  "CONTRACT_SIZE_LIMIT_EXCEEDED",
	32:  "LOCAL_CALL_MODIFICATION_EXCEPTION",
	33:  "CONTRACT_REVERT_EXECUTED",
	34:  "CONTRACT_EXECUTION_EXCEPTION",
	35:  "INVALID_RECEIVING_NODE_ACCOUNT",
	36:  "MISSING_QUERY_HEADER",
	37:  "ACCOUNT_UPDATE_FAILED",
	38:  "INVALID_KEY_ENCODING",
	39:  "NULL_SOLIDITY_ADDRESS",
	40:  "CONTRACT_UPDATE_FAILED",
	41:  "INVALID_QUERY_HEADER",
	42:  "INVALID_FEE_SUBMITTED",
	43:  "INVALID_PAYER_SIGNATURE",
	44:  "KEY_NOT_PROVIDED",
	45:  "INVALID_EXPIRATION_TIME",
	46:  "NO_WACL_KEY",
	47:  "FILE_CONTENT_EMPTY",
	48:  "INVALID_ACCOUNT_AMOUNTS",
	49:  "EMPTY_TRANSACTION_BODY",
	50:  "INVALID_TRANSACTION_BODY",
	150: "SCHEDULE_ALREADY_DELETED",
	201: "SCHEDULE_ALREADY_EXECUTED",
	202: "MESSAGE_SIZE_TOO_LARGE",
}

// ResponseCodeLabel returns the diagnostic label for code and whether it is
// present in the closed table.
func ResponseCodeLabel(code int) (string, bool) {
	label, ok := responseCodeLabels[code]
	return label, ok
}

// ResponseCodeClass classifies a response code into one of three buckets.
type ResponseCodeClass int

const (
	ClassSuccess ResponseCodeClass = iota
	ClassUnknown
	ClassFailed
)

// ClassifyResponseCode buckets a response code: success (0, 22), unknown
// (21), failed (everything else).
func ClassifyResponseCode(code int) ResponseCodeClass {
	switch code {
	case 0, 22:
		return ClassSuccess
	case 21:
		return ClassUnknown
	default:
		return ClassFailed
	}
}

// IsPrecheckSuccess reports whether a precheck code is considered a success
// (0 or 22).
func IsPrecheckSuccess(code int) bool {
	return code == 0 || code == 22
}
