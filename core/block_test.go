package core

import "testing"

func TestClassifyBlockItemHeader(t *testing.T) {
	header := NewWriter(8)
	header.WriteUvarint(1, 500) // block number
	item := NewWriter(16)
	item.WriteMessage(1, header.Bytes())

	classified := classifyBlockItem(item.Bytes())
	if classified.Type != ItemHeader {
		t.Fatalf("got type %v, want ItemHeader", classified.Type)
	}
	if classified.BlockNumber != 500 {
		t.Fatalf("got block number %d, want 500", classified.BlockNumber)
	}
}

func TestClassifyBlockItemFirstRecognizedWins(t *testing.T) {
	// A BlockItem message with both field 4 (event transaction) and field 5
	// (transaction result) set: classification must stop at the first
	// recognized field number.
	item := NewWriter(16)
	item.WriteBytes(4, []byte("event"))
	item.WriteBytes(5, []byte("result"))

	classified := classifyBlockItem(item.Bytes())
	if classified.Type != ItemEventTransaction {
		t.Fatalf("got type %v, want ItemEventTransaction", classified.Type)
	}
}

func TestParseEventTransactionWrongItemType(t *testing.T) {
	item := BlockItem{Type: ItemTransactionResult}
	if _, err := ParseEventTransaction(item); err != ErrWrongItemType {
		t.Fatalf("got %v, want ErrWrongItemType", err)
	}
}

func TestParseEventTransaction(t *testing.T) {
	body := NewWriter(32)
	body.WriteString(eventTxFieldMemo, "hello")
	body.WriteMessage(eventTxFieldTransfers, encodeTransfer(Transfer{AccountId: EntityId{0, 0, 1}, Amount: HbarFromTinybars(-5)}))

	item := BlockItem{Type: ItemEventTransaction, Payload: body.Bytes()}
	et, err := ParseEventTransaction(item)
	if err != nil {
		t.Fatalf("ParseEventTransaction: %v", err)
	}
	if et.Memo != "hello" {
		t.Fatalf("got memo=%q, want %q", et.Memo, "hello")
	}
	if len(et.Transfers) != 1 || et.Transfers[0].Amount.AsTinybars() != -5 {
		t.Fatalf("got transfers=%+v", et.Transfers)
	}
}

func TestDecodeBlockItemSetPreservesOrder(t *testing.T) {
	mk := func(fieldNum uint32, memo string) []byte {
		body := NewWriter(16)
		body.WriteString(eventTxFieldMemo, memo)
		item := NewWriter(24)
		item.WriteMessage(fieldNum, body.Bytes())
		return item.Bytes()
	}

	set := NewWriter(64)
	set.WriteBytes(blockFieldItems, mk(4, "first"))
	set.WriteBytes(blockFieldItems, mk(4, "second"))
	set.WriteBytes(blockFieldItems, mk(4, "third"))

	items, err := decodeBlockItemSet(set.Bytes(), blockFieldItems)
	if err != nil {
		t.Fatalf("decodeBlockItemSet: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	wantMemos := []string{"first", "second", "third"}
	for i, it := range items {
		et, err := ParseEventTransaction(it)
		if err != nil {
			t.Fatalf("item %d: ParseEventTransaction: %v", i, err)
		}
		if et.Memo != wantMemos[i] {
			t.Fatalf("item %d: got memo=%q, want %q", i, et.Memo, wantMemos[i])
		}
	}
}

func TestBlockFromItemsDerivesNumberFromHeader(t *testing.T) {
	header := NewWriter(8)
	header.WriteUvarint(1, 77)
	items := []BlockItem{
		{Type: ItemHeader, BlockNumber: 77},
		{Type: ItemEventTransaction},
	}
	blk := blockFromItems(items)
	if blk.Number != 77 {
		t.Fatalf("got number=%d, want 77", blk.Number)
	}
	if len(blk.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(blk.Items))
	}
}
