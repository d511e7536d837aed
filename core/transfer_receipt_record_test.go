package core

import (
	"bytes"
	"testing"
)

func TestTransferEncodeDecodeRoundTrip(t *testing.T) {
	xfer := Transfer{AccountId: EntityId{0, 0, 99}, Amount: HbarFromTinybars(-500), IsApproval: true}
	got, err := decodeTransfer(encodeTransfer(xfer))
	if err != nil {
		t.Fatalf("decodeTransfer: %v", err)
	}
	if got != xfer {
		t.Fatalf("got %+v, want %+v", got, xfer)
	}
}

func TestTransactionReceiptRoundTripSimple(t *testing.T) {
	accID := EntityId{0, 0, 1001}
	rec := TransactionReceipt{
		Status:         22,
		TransactionId:  TransactionId{AccountId: EntityId{0, 0, 5}, ValidStart: Timestamp{Seconds: 10}},
		CreatedAccount: &accID,
		SerialNumbers:  []int64{1, 2, 3},
	}
	got, err := decodeTransactionReceipt(encodeTransactionReceipt(rec))
	if err != nil {
		t.Fatalf("decodeTransactionReceipt: %v", err)
	}
	if got.Status != rec.Status {
		t.Fatalf("got status=%d, want %d", got.Status, rec.Status)
	}
	if got.CreatedAccount == nil || *got.CreatedAccount != accID {
		t.Fatalf("got CreatedAccount=%v, want %v", got.CreatedAccount, accID)
	}
	if len(got.SerialNumbers) != 3 || got.SerialNumbers[2] != 3 {
		t.Fatalf("got serial numbers %v, want [1 2 3]", got.SerialNumbers)
	}
}

func TestTransactionReceiptNestedDuplicatesAndChildren(t *testing.T) {
	dup := TransactionReceipt{Status: 21, TransactionId: TransactionId{AccountId: EntityId{0, 0, 2}}}
	child := TransactionReceipt{Status: 22, TransactionId: TransactionId{AccountId: EntityId{0, 0, 3}}}
	rec := TransactionReceipt{
		Status:        22,
		TransactionId: TransactionId{AccountId: EntityId{0, 0, 1}},
		Duplicates:    []TransactionReceipt{dup},
		Children:      []TransactionReceipt{child},
	}

	got, err := decodeTransactionReceipt(encodeTransactionReceipt(rec))
	if err != nil {
		t.Fatalf("decodeTransactionReceipt: %v", err)
	}
	if len(got.Duplicates) != 1 || got.Duplicates[0].TransactionId.AccountId != dup.TransactionId.AccountId {
		t.Fatalf("got duplicates %+v, want one matching %+v", got.Duplicates, dup)
	}
	if len(got.Children) != 1 || got.Children[0].TransactionId.AccountId != child.TransactionId.AccountId {
		t.Fatalf("got children %+v, want one matching %+v", got.Children, child)
	}
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	rec := TransactionRecord{
		Receipt:            TransactionReceipt{Status: 22, TransactionId: TransactionId{AccountId: EntityId{0, 0, 1}}},
		TransactionHash:    []byte{1, 2, 3, 4},
		ConsensusTimestamp: Timestamp{Seconds: 555, Nanos: 9},
		Memo:               "payment",
		TransactionFee:     123456,
		TransferList: []Transfer{
			{AccountId: EntityId{0, 0, 1}, Amount: HbarFromTinybars(-100)},
			{AccountId: EntityId{0, 0, 2}, Amount: HbarFromTinybars(100)},
		},
	}

	got, err := decodeTransactionRecord(encodeTransactionRecord(rec))
	if err != nil {
		t.Fatalf("decodeTransactionRecord: %v", err)
	}
	if got.Memo != rec.Memo || got.TransactionFee != rec.TransactionFee {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
	if !bytes.Equal(got.TransactionHash, rec.TransactionHash) {
		t.Fatalf("got hash=%x, want %x", got.TransactionHash, rec.TransactionHash)
	}
	if got.ConsensusTimestamp != rec.ConsensusTimestamp {
		t.Fatalf("got consensus ts=%+v, want %+v", got.ConsensusTimestamp, rec.ConsensusTimestamp)
	}
	if len(got.TransferList) != 2 || got.TransferList[1].Amount != HbarFromTinybars(100) {
		t.Fatalf("got transfer list %+v", got.TransferList)
	}
}

func TestTransactionRecordNestedChildrenRoundTrip(t *testing.T) {
	child := TransactionRecord{
		Receipt: TransactionReceipt{Status: 22, TransactionId: TransactionId{AccountId: EntityId{0, 0, 9}}},
		Memo:    "child",
	}
	parent := TransactionRecord{
		Receipt:  TransactionReceipt{Status: 22, TransactionId: TransactionId{AccountId: EntityId{0, 0, 1}}},
		Memo:     "parent",
		Children: []TransactionRecord{child},
	}

	got, err := decodeTransactionRecord(encodeTransactionRecord(parent))
	if err != nil {
		t.Fatalf("decodeTransactionRecord: %v", err)
	}
	if len(got.Children) != 1 || got.Children[0].Memo != "child" {
		t.Fatalf("got children %+v, want one with memo=child", got.Children)
	}
}
