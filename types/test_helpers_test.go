package types

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/blake2b"

	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

func blake2bSum(b []byte) [32]byte { return blake2b.Sum256(b) }

func wireMessageID(b byte) *inx.MessageId {
	return &inx.MessageId{Id: bytes.Repeat([]byte{b}, stardust.MessageIDLength)}
}

func wireMilestoneID(b byte) *inx.MilestoneId {
	return &inx.MilestoneId{Id: bytes.Repeat([]byte{b}, stardust.MilestoneIDLength)}
}

func packedMessage(t *testing.T) []byte {
	t.Helper()
	var p1, p2 stardust.MessageID
	p1[0], p2[0] = 1, 2
	m := &stardust.Message{
		ProtocolVersion: 2,
		Parents:         []stardust.MessageID{p1, p2},
		Payload:         &stardust.TaggedData{Tag: []byte("t"), Data: []byte("d")},
		Nonce:           42,
	}
	return m.Pack()
}

// packedMilestoneMessage packs a message with one parent carrying a
// milestone with one parent, metadata "ms" and one signature.
func packedMilestoneMessage(t *testing.T) []byte {
	t.Helper()
	var parent stardust.MessageID
	parent[0] = 1
	m := &stardust.Message{
		ProtocolVersion: 2,
		Parents:         []stardust.MessageID{parent},
		Payload: &stardust.MilestonePayload{
			Essence: stardust.MilestoneEssence{
				Index:     9,
				Timestamp: 1650000000,
				Parents:   []stardust.MessageID{parent},
				Metadata:  []byte("ms"),
			},
			Signatures: []stardust.Ed25519Signature{{
				PublicKey: bytes.Repeat([]byte{0xA1}, 32),
				Signature: bytes.Repeat([]byte{0x5A}, 64),
			}},
		},
		Nonce: 3,
	}
	return m.Pack()
}

func validWireMessage(t *testing.T) *inx.Message {
	t.Helper()
	return &inx.Message{
		MessageId: wireMessageID(0x10),
		Message:   &inx.RawMessage{Data: packedMessage(t)},
	}
}

func validWireMetadata() *inx.MessageMetadata {
	return &inx.MessageMetadata{
		MessageId:                  wireMessageID(0x10),
		Parents:                    []*inx.MessageId{wireMessageID(0x01), wireMessageID(0x02)},
		Solid:                      true,
		ReferencedByMilestoneIndex: 100,
		MilestoneIndex:             100,
		LedgerInclusionState:       inx.LedgerInclusionStateIncluded,
		ConflictReason:             inx.ConflictReasonNone,
	}
}

func validWireNodeStatus() *inx.NodeStatus {
	return &inx.NodeStatus{
		IsHealthy:          true,
		LatestMilestone:    &inx.MilestoneInfo{MilestoneIndex: 12, MilestoneTimestamp: 1000, MilestoneId: wireMilestoneID(0x0C)},
		ConfirmedMilestone: &inx.MilestoneInfo{MilestoneIndex: 11, MilestoneTimestamp: 990, MilestoneId: wireMilestoneID(0x0B)},
		PruningIndex:       1,
		LedgerIndex:        11,
	}
}

func validWireNodeConfiguration() *inx.NodeConfiguration {
	return &inx.NodeConfiguration{
		ProtocolParameters: &inx.ProtocolParameters{
			Version:       2,
			NetworkName:   "testnet",
			Bech32Hrp:     "rms",
			MinPowScore:   1000,
			BelowMaxDepth: 15,
			RentStructure: &inx.RentStructure{VByteCost: 500, VByteFactorData: 1, VByteFactorKey: 10},
			TokenSupply:   2779530283277761,
		},
		MilestonePublicKeyCount: 2,
		MilestoneKeyRanges: []*inx.MilestoneKeyRange{
			{PublicKey: bytes.Repeat([]byte{0xA1}, 32), StartIndex: 0, EndIndex: 0},
			{PublicKey: bytes.Repeat([]byte{0xA2}, 32), StartIndex: 10, EndIndex: 20},
		},
		BaseToken: &inx.BaseToken{
			Name:            "Shimmer",
			TickerSymbol:    "SMR",
			Unit:            "SMR",
			Subunit:         "glow",
			Decimals:        6,
			UseMetricPrefix: false,
		},
	}
}

// requireError asserts err is a conversion error of the given kind and field.
func requireError(t *testing.T, err error, kind Kind, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s(%s), got nil", kind, field)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *types.Error, got %T: %v", err, err)
	}
	if e.Kind != kind || e.Field != field {
		t.Fatalf("expected %s(%s), got %s(%s)", kind, field, e.Kind, e.Field)
	}
}
