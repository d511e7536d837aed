package core

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Method paths for the HederaProtoService query/submit RPCs, mirroring the
// BlockAccessService/BlockStreamService naming convention used for block
// ingestion RPCs.
const (
	PathCryptoGetAccountBalance = "/proto.CryptoService/cryptoGetBalance"
	PathCryptoGetAccountInfo    = "/proto.CryptoService/getAccountInfo"
	PathCryptoGetAccountRecords = "/proto.CryptoService/getAccountRecords"
	PathTokenGetInfo            = "/proto.TokenService/getTokenInfo"
	PathTokenGetBalances        = "/proto.TokenService/getAccountTokenBalances"
	PathContractGetInfo         = "/proto.SmartContractService/getContractInfo"
	PathContractCallLocal       = "/proto.SmartContractService/contractCallLocalMethod"
	PathTransactionGetReceipt   = "/proto.CryptoService/getTransactionReceipts"
	PathTransactionGetRecord    = "/proto.CryptoService/getTxRecordByTxID"
	PathScheduleGetInfo         = "/proto.ScheduleService/getScheduleInfo"
	PathTransactionSubmit       = "/proto.CryptoService/createTransaction"
)

// Client is the SDK's request-reply façade: one method per HederaProtoService
// query/submit RPC, each composing a message encoder, a Transport round
// trip, and a response decoder. It also exposes the BlockStreamEngine for
// block ingestion.
type Client struct {
	transport  Transport
	blocks     *BlockStreamEngine
	clock      Clock
	operatorId EntityId
	log        *logrus.Entry
}

// NewClient wires a façade over transport, optionally with a block stream
// engine (nil if the caller never touches block ingestion) and the
// operator account used to generate TransactionIds for submitted
// transactions.
func NewClient(transport Transport, blocks *BlockStreamEngine, clock Clock, operatorId EntityId) *Client {
	return &Client{
		transport:  transport,
		blocks:     blocks,
		clock:      clock,
		operatorId: operatorId,
		log:        logrus.WithField("component", "client"),
	}
}

// Blocks exposes the block stream engine for getBlock/getBlockRange/
// subscribeBlocks, nil if this Client was constructed without one.
func (c *Client) Blocks() *BlockStreamEngine { return c.blocks }

// NextTransactionId generates a fresh TransactionId for the operator
// account, for use with SubmitTransaction and subsequent receipt/record
// lookups.
func (c *Client) NextTransactionId() TransactionId {
	return GenerateTransactionId(c.clock, c.operatorId)
}

func (c *Client) GetAccountBalance(ctx context.Context, accountId EntityId) (AccountBalance, error) {
	resp, err := c.transport.Unary(ctx, PathCryptoGetAccountBalance, EncodeAccountBalanceQuery(accountId))
	if err != nil {
		return AccountBalance{}, err
	}
	return DecodeAccountBalanceResponse(resp)
}

func (c *Client) GetAccountInfo(ctx context.Context, accountId EntityId) (AccountInfo, error) {
	resp, err := c.transport.Unary(ctx, PathCryptoGetAccountInfo, EncodeAccountInfoQuery(accountId))
	if err != nil {
		return AccountInfo{}, err
	}
	return DecodeAccountInfoResponse(resp)
}

func (c *Client) GetAccountRecords(ctx context.Context, accountId EntityId) ([]TransactionRecord, error) {
	resp, err := c.transport.Unary(ctx, PathCryptoGetAccountRecords, EncodeAccountRecordsQuery(accountId))
	if err != nil {
		return nil, err
	}
	return DecodeAccountRecordsResponse(resp)
}

func (c *Client) GetTokenInfo(ctx context.Context, tokenId EntityId) (TokenInfo, error) {
	resp, err := c.transport.Unary(ctx, PathTokenGetInfo, EncodeTokenInfoQuery(tokenId))
	if err != nil {
		return TokenInfo{}, err
	}
	return DecodeTokenInfoResponse(resp)
}

func (c *Client) GetTokenBalances(ctx context.Context, accountId EntityId) ([]TokenBalance, error) {
	resp, err := c.transport.Unary(ctx, PathTokenGetBalances, EncodeTokenBalancesQuery(accountId))
	if err != nil {
		return nil, err
	}
	return DecodeTokenBalancesResponse(resp)
}

func (c *Client) GetContractInfo(ctx context.Context, contractId EntityId) (ContractInfo, error) {
	resp, err := c.transport.Unary(ctx, PathContractGetInfo, EncodeContractInfoQuery(contractId))
	if err != nil {
		return ContractInfo{}, err
	}
	return DecodeContractInfoResponse(resp)
}

// ContractCall issues a local (query-style) contract call.
func (c *Client) ContractCall(ctx context.Context, contractId EntityId, functionParameters []byte, gas uint64) (ContractCallResult, error) {
	resp, err := c.transport.Unary(ctx, PathContractCallLocal, EncodeContractCallQuery(contractId, functionParameters, gas))
	if err != nil {
		return ContractCallResult{}, err
	}
	return DecodeContractCallResponse(resp)
}

func (c *Client) GetTransactionReceipt(ctx context.Context, txID TransactionId) (TransactionReceipt, error) {
	resp, err := c.transport.Unary(ctx, PathTransactionGetReceipt, EncodeTransactionGetReceiptQuery(txID))
	if err != nil {
		return TransactionReceipt{}, err
	}
	return DecodeTransactionGetReceiptResponse(resp)
}

func (c *Client) GetTransactionRecord(ctx context.Context, txID TransactionId) (TransactionRecord, error) {
	resp, err := c.transport.Unary(ctx, PathTransactionGetRecord, EncodeTransactionGetRecordQuery(txID))
	if err != nil {
		return TransactionRecord{}, err
	}
	return DecodeTransactionGetRecordResponse(resp)
}

func (c *Client) GetScheduleInfo(ctx context.Context, scheduleId EntityId) (ScheduleInfo, error) {
	resp, err := c.transport.Unary(ctx, PathScheduleGetInfo, EncodeScheduleGetInfoQuery(scheduleId))
	if err != nil {
		return ScheduleInfo{}, err
	}
	return DecodeScheduleGetInfoResponse(resp)
}

// SubmitTransaction sends a fully-signed transaction and returns its
// precheck result. A non-success, non-OK-for-retry code is surfaced as a
// PrecheckFailedError so callers can distinguish "accepted for consensus"
// (codes 0 and 22, see IsPrecheckSuccess) from an outright rejection.
func (c *Client) SubmitTransaction(ctx context.Context, transactionBytes []byte) (PrecheckResponse, error) {
	resp, err := c.transport.Unary(ctx, PathTransactionSubmit, transactionBytes)
	if err != nil {
		return PrecheckResponse{}, err
	}
	pr, err := DecodePrecheckResponse(resp)
	if err != nil {
		return PrecheckResponse{}, err
	}
	if !IsPrecheckSuccess(pr.PrecheckCode) {
		c.log.WithField("precheck_code", pr.PrecheckCode).Warn("transaction precheck failed")
		return pr, &PrecheckFailedError{Code: pr.PrecheckCode}
	}
	return pr, nil
}
