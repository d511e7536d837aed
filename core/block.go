package core

// Block is a decoded sequence of BlockItems plus the block number extracted
// from the header item, if one was present.
type Block struct {
	Number uint64
	Items  []BlockItem
}

// BlockItemType classifies a BlockItem by the first recognized field number
// on its wire payload.
type BlockItemType int

const (
	ItemUnknown BlockItemType = iota
	ItemHeader
	ItemStartEvent
	ItemRoundHeader
	ItemEventTransaction
	ItemTransactionResult
	ItemTransactionOutput
	ItemStateChanges
	ItemStateProof
)

// BlockItem is a tagged variant over the BlockItem oneof. Payload holds the
// opaque encoded bytes of the original field; typed parsing happens on
// demand via ParseEventTransaction et al.
type BlockItem struct {
	Type    BlockItemType
	Payload []byte

	// BlockNumber is populated only when Type == ItemHeader, extracted from
	// sub-field 1 of the header payload.
	BlockNumber uint64
}

// blockItemFieldType maps a BlockItem oneof field number to its classified
// type. First recognized field wins — classifyBlockItem stops at the first
// field in the table it sees.
func blockItemFieldType(fieldNum uint32) (BlockItemType, bool) {
	switch fieldNum {
	case 1:
		return ItemHeader, true
	case 2:
		return ItemStartEvent, true
	case 3:
		return ItemRoundHeader, true
	case 4:
		return ItemEventTransaction, true
	case 5:
		return ItemTransactionResult, true
	case 6:
		return ItemTransactionOutput, true
	case 7:
		return ItemStateChanges, true
	case 8, 9, 10:
		return ItemStateProof, true
	default:
		return ItemUnknown, false
	}
}

// classifyBlockItem reads the first recognized field number of a raw
// BlockItem message and returns its classification and payload. All other
// fields within the same item are ignored, preserving forward
// compatibility with fields this SDK doesn't yet recognize.
func classifyBlockItem(raw []byte) BlockItem {
	r := NewReader(raw)
	for {
		f, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		typ, known := blockItemFieldType(f.Number)
		if !known {
			continue
		}
		item := BlockItem{Type: typ, Payload: append([]byte(nil), f.Bytes...)}
		if typ == ItemHeader {
			item.BlockNumber = extractHeaderBlockNumber(f.Bytes)
		}
		return item
	}
	return BlockItem{Type: ItemUnknown, Payload: append([]byte(nil), raw...)}
}

// extractHeaderBlockNumber reads sub-field 1 of a BlockHeader payload.
func extractHeaderBlockNumber(header []byte) uint64 {
	r := NewReader(header)
	for {
		f, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		if f.Number == 1 {
			return f.Varint
		}
	}
	return 0
}

// decodeBlockItemSet decodes a repeated sequence of BlockItem messages
// (each a length-delimited field at a shared field number) in wire order.
func decodeBlockItemSet(raw []byte, itemFieldNum uint32) ([]BlockItem, error) {
	r := NewReader(raw)
	var items []BlockItem
	for {
		f, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if f.Number == itemFieldNum {
			items = append(items, classifyBlockItem(f.Bytes))
		}
	}
	return items, nil
}

// blockFromItems builds a Block from a flat, ordered item slice, deriving
// Number from the first header item found (0 if none present).
func blockFromItems(items []BlockItem) Block {
	b := Block{Items: items}
	for _, it := range items {
		if it.Type == ItemHeader {
			b.Number = it.BlockNumber
			break
		}
	}
	return b
}
