package core

import (
	"context"
	"testing"
)

// fakeTransport is a minimal in-memory Transport double used to drive
// BlockStreamEngine without a real HTTP server.
type fakeTransport struct {
	unaryResp  []byte
	unaryErr   error
	unaryCalls int

	streamFrames [][]byte
	streamErr    error
}

func (f *fakeTransport) Unary(ctx context.Context, path string, requestBytes []byte) ([]byte, error) {
	f.unaryCalls++
	return f.unaryResp, f.unaryErr
}

func (f *fakeTransport) ServerStreaming(ctx context.Context, path string, requestBytes []byte, consumer FrameConsumer) error {
	if f.streamErr != nil {
		return f.streamErr
	}
	for _, frame := range f.streamFrames {
		cont, err := consumer(frame)
		if err != nil {
			if err == errStreamComplete {
				return nil
			}
			return err
		}
		if !cont {
			return ErrCancelled
		}
	}
	return nil
}

func encodeSingleBlockResponseFixture(status int, blockNumber uint64) []byte {
	header := NewWriter(8)
	header.WriteUvarint(1, blockNumber)
	item := NewWriter(16)
	item.WriteMessage(1, header.Bytes())
	block := NewWriter(24)
	block.WriteBytes(blockFieldItems, item.Bytes())

	resp := NewWriter(32)
	resp.WriteUvarint(singleBlockRespFieldStatus, uint64(status))
	resp.WriteMessage(singleBlockRespFieldBlock, block.Bytes())
	return resp.Bytes()
}

func TestGetBlockSuccess(t *testing.T) {
	ft := &fakeTransport{unaryResp: encodeSingleBlockResponseFixture(22, 100)}
	engine, err := NewBlockStreamEngine(ft, 0)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}
	blk, err := engine.GetBlock(context.Background(), 100)
	if err != nil {
		t.Fatalf("GetBlock: %v", err)
	}
	if blk.Number != 100 {
		t.Fatalf("got block number %d, want 100", blk.Number)
	}
}

func TestGetBlockUnavailable(t *testing.T) {
	ft := &fakeTransport{unaryResp: encodeSingleBlockResponseFixture(1, 0)} // 1 = INVALID_TRANSACTION, a failure class
	engine, err := NewBlockStreamEngine(ft, 0)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}
	if _, err := engine.GetBlock(context.Background(), 100); err == nil {
		t.Fatal("expected a BlockUnavailableError")
	} else if _, ok := err.(*BlockUnavailableError); !ok {
		t.Fatalf("got %T, want *BlockUnavailableError", err)
	}
}

func TestGetBlockUsesCache(t *testing.T) {
	ft := &fakeTransport{unaryResp: encodeSingleBlockResponseFixture(22, 5)}
	engine, err := NewBlockStreamEngine(ft, 8)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}
	ctx := context.Background()
	if _, err := engine.GetBlock(ctx, 5); err != nil {
		t.Fatalf("GetBlock 1: %v", err)
	}
	if _, err := engine.GetBlock(ctx, 5); err != nil {
		t.Fatalf("GetBlock 2: %v", err)
	}
	if ft.unaryCalls != 1 {
		t.Fatalf("got %d unary calls, want 1 (second GetBlock should hit the cache)", ft.unaryCalls)
	}
}

func TestGetBlockRangeReturnsInclusiveCount(t *testing.T) {
	ft := &fakeTransport{unaryResp: encodeSingleBlockResponseFixture(22, 10)}
	engine, err := NewBlockStreamEngine(ft, 0)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}

	blocks, err := engine.GetBlockRange(context.Background(), 10, 12)
	if err != nil {
		t.Fatalf("GetBlockRange: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
}

// makeBlockItemSetFrame builds one SubscribeStreamResponse DATA frame
// carrying a BlockItemSet with n synthetic event-transaction items.
func makeBlockItemSetFrame(n int) []byte {
	set := NewWriter(64)
	for i := 0; i < n; i++ {
		body := NewWriter(16)
		body.WriteString(eventTxFieldMemo, "item")
		item := NewWriter(24)
		item.WriteMessage(4, body.Bytes())
		set.WriteBytes(blockFieldItems, item.Bytes())
	}
	resp := NewWriter(96)
	resp.WriteMessage(subscribeRespFieldItemSet, set.Bytes())
	return resp.Bytes()
}

func makeTerminalStatusFrame(status int) []byte {
	resp := NewWriter(8)
	resp.WriteUvarint(subscribeRespFieldStatus, uint64(status))
	return resp.Bytes()
}

// TestSubscribeBlocksTerminalStatus checks that three BlockItemSet frames
// followed by a status frame yield exactly three consumer invocations, in
// order, and that the call returns cleanly.
func TestSubscribeBlocksTerminalStatus(t *testing.T) {
	ft := &fakeTransport{streamFrames: [][]byte{
		makeBlockItemSetFrame(2),
		makeBlockItemSetFrame(1),
		makeBlockItemSetFrame(3),
		makeTerminalStatusFrame(22),
	}}
	engine, err := NewBlockStreamEngine(ft, 0)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}

	var batches [][]BlockItem
	err = engine.SubscribeBlocks(context.Background(), 0, 10, func(items []BlockItem) error {
		batches = append(batches, items)
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribeBlocks: %v", err)
	}
	if len(batches) != 3 {
		t.Fatalf("got %d consumer invocations, want 3", len(batches))
	}
	wantCounts := []int{2, 1, 3}
	for i, b := range batches {
		if len(b) != wantCounts[i] {
			t.Fatalf("batch %d: got %d items, want %d", i, len(b), wantCounts[i])
		}
	}
}

func TestSubscribeBlocksInvokesConsumerPerBatchUntilStatus(t *testing.T) {
	ft := &fakeTransport{streamFrames: [][]byte{
		makeBlockItemSetFrame(1),
		makeBlockItemSetFrame(1),
		makeTerminalStatusFrame(22),
	}}
	engine, err := NewBlockStreamEngine(ft, 0)
	if err != nil {
		t.Fatalf("NewBlockStreamEngine: %v", err)
	}

	seen := 0
	err = engine.SubscribeBlocks(context.Background(), 0, 10, func(items []BlockItem) error {
		seen++
		return nil
	})
	if err != nil {
		t.Fatalf("SubscribeBlocks: %v", err)
	}
	if seen != 2 {
		t.Fatalf("got %d invocations, want 2", seen)
	}
}
