package core

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// Service method paths for the Block Node RPCs.
const (
	PathSingleBlock      = "/com.hedera.hapi.block.BlockAccessService/singleBlock"
	PathSubscribeStream  = "/com.hedera.hapi.block.BlockStreamService/subscribeBlockStream"
)

const (
	singleBlockReqFieldNumber   = 1
	singleBlockRespFieldStatus  = 1
	singleBlockRespFieldBlock   = 2
	blockFieldItems             = 1

	subscribeReqFieldStart = 1
	subscribeReqFieldEnd   = 2

	subscribeRespFieldStatus    = 1
	subscribeRespFieldItemSet   = 2
)

// BlockConsumer receives one ordered batch of BlockItems per inbound
// BlockItemSet frame. A plain function value satisfies it.
type BlockConsumer func(items []BlockItem) error

// BlockStreamEngine implements getBlock/getBlockRange/subscribeBlocks.
type BlockStreamEngine struct {
	transport Transport
	cache     *lru.Cache[uint64, Block]
	log       *logrus.Entry
}

// NewBlockStreamEngine constructs an engine over t. cacheSize of 0 disables
// the getBlock result cache entirely — it is strictly an optimization,
// never consulted by subscribeBlocks.
func NewBlockStreamEngine(t Transport, cacheSize int) (*BlockStreamEngine, error) {
	e := &BlockStreamEngine{
		transport: t,
		log:       logrus.WithField("component", "block_stream_engine"),
	}
	if cacheSize > 0 {
		c, err := lru.New[uint64, Block](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("hederacore: block cache: %w", err)
		}
		e.cache = c
	}
	return e, nil
}

// encodeSingleBlockRequest builds a SingleBlockRequest for block number n.
func encodeSingleBlockRequest(n uint64) []byte {
	w := NewWriter(8)
	w.WriteUvarint(singleBlockReqFieldNumber, n)
	return w.Bytes()
}

func decodeSingleBlockResponse(b []byte) (status int, block Block, hasBlock bool, err error) {
	r := NewReader(b)
	for {
		f, ok, e := r.Next()
		if e != nil {
			return 0, Block{}, false, e
		}
		if !ok {
			break
		}
		switch f.Number {
		case singleBlockRespFieldStatus:
			status = int(f.Varint)
		case singleBlockRespFieldBlock:
			blk, e := decodeBlockMessage(f.Bytes)
			if e != nil {
				return 0, Block{}, false, e
			}
			block = blk
			hasBlock = true
		}
	}
	return status, block, hasBlock, nil
}

func decodeBlockMessage(b []byte) (Block, error) {
	r := NewReader(b)
	var items []BlockItem
	for {
		f, ok, err := r.Next()
		if err != nil {
			return Block{}, err
		}
		if !ok {
			break
		}
		if f.Number == blockFieldItems {
			items = append(items, classifyBlockItem(f.Bytes))
		}
	}
	return blockFromItems(items), nil
}

// GetBlock fetches a single block via one unary call. A non-success status
// fails with BlockUnavailableError; a missing Block message fails with
// ErrMalformedResponse.
func (e *BlockStreamEngine) GetBlock(ctx context.Context, n uint64) (Block, error) {
	if e.cache != nil {
		if blk, ok := e.cache.Get(n); ok {
			return blk, nil
		}
	}
	respBytes, err := e.transport.Unary(ctx, PathSingleBlock, encodeSingleBlockRequest(n))
	if err != nil {
		return Block{}, err
	}
	status, block, hasBlock, err := decodeSingleBlockResponse(respBytes)
	if err != nil {
		return Block{}, err
	}
	if ClassifyResponseCode(status) != ClassSuccess {
		return Block{}, &BlockUnavailableError{Status: status}
	}
	if !hasBlock {
		return Block{}, ErrMalformedResponse
	}
	if e.cache != nil {
		e.cache.Add(n, block)
	}
	return block, nil
}

// GetBlockRange fetches blocks [start, end] inclusive in ascending order.
// On any failure, blocks already fetched are discarded and the error
// surfaces — there is nothing further for the caller to release since
// Go's GC owns the Block values.
func (e *BlockStreamEngine) GetBlockRange(ctx context.Context, start, end uint64) ([]Block, error) {
	if start > end {
		return nil, fmt.Errorf("hederacore: invalid range %d..%d", start, end)
	}
	blocks := make([]Block, 0, end-start+1)
	for n := start; n <= end; n++ {
		blk, err := e.GetBlock(ctx, n)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, blk)
	}
	return blocks, nil
}

func encodeSubscribeRequest(start, end uint64) []byte {
	w := NewWriter(16)
	w.WriteUvarint(subscribeReqFieldStart, start)
	w.WriteUvarint(subscribeReqFieldEnd, end)
	return w.Bytes()
}

// SubscribeBlocks opens a server-streaming call over [start, end] and
// delivers each inbound BlockItemSet to consumer as a single batch, in
// strict wire order, with no reordering, dropping, or duplication across
// or within batches. A terminal status frame ends the subscription
// cleanly; any other failure closes it with the underlying error.
func (e *BlockStreamEngine) SubscribeBlocks(ctx context.Context, start, end uint64, consumer BlockConsumer) error {
	req := encodeSubscribeRequest(start, end)
	// Each call gets its own inflator: concurrent SubscribeBlocks calls on
	// the same engine are independent call chains and must not share gzip
	// reader state.
	inf := newInflator()
	return e.transport.ServerStreaming(ctx, PathSubscribeStream, req, func(frame []byte) (bool, error) {
		inflated, err := inf.Inflate(frame)
		if err != nil {
			return false, err
		}
		return e.handleSubscribeFrame(inflated, consumer)
	})
}

// handleSubscribeFrame decodes one SubscribeStreamResponse one-of. It
// returns (continue, error): continue is false once a terminal status
// frame is seen, and the error is errStreamComplete so the transport
// ends the call with nil rather than treating it as cancellation.
func (e *BlockStreamEngine) handleSubscribeFrame(frame []byte, consumer BlockConsumer) (bool, error) {
	r := NewReader(frame)
	for {
		f, ok, err := r.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		switch f.Number {
		case subscribeRespFieldStatus:
			status := int(f.Varint)
			e.log.WithField("status", status).Debug("subscription terminal status")
			return false, errStreamComplete
		case subscribeRespFieldItemSet:
			items, err := decodeBlockItemSet(f.Bytes, blockFieldItems)
			if err != nil {
				return false, err
			}
			if err := consumer(items); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
