package stardust

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	MessageIDLength   = 32
	MilestoneIDLength = 32
)

// MessageID is the BLAKE2b-256 digest of a packed message.
type MessageID [MessageIDLength]byte

// MilestoneID is the BLAKE2b-256 digest of a packed milestone essence.
type MilestoneID [MilestoneIDLength]byte

// fixedBytes copies src into dst only when both have exactly the same
// length. There is no truncation and no padding.
func fixedBytes(dst, src []byte) error {
	if len(src) != len(dst) {
		return ErrInvalidLength
	}
	copy(dst, src)
	return nil
}

// MessageIDFromBytes copies b into a MessageID. It fails with
// ErrInvalidLength unless b is exactly MessageIDLength bytes.
func MessageIDFromBytes(b []byte) (MessageID, error) {
	var id MessageID
	if err := fixedBytes(id[:], b); err != nil {
		return MessageID{}, err
	}
	return id, nil
}

// MilestoneIDFromBytes is MessageIDFromBytes for milestone ids.
func MilestoneIDFromBytes(b []byte) (MilestoneID, error) {
	var id MilestoneID
	if err := fixedBytes(id[:], b); err != nil {
		return MilestoneID{}, err
	}
	return id, nil
}

// MessageIDFromHex parses a hex identifier, with or without a 0x prefix.
func MessageIDFromHex(s string) (MessageID, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return MessageID{}, ErrInvalidHex
	}
	return MessageIDFromBytes(b)
}

func (id MessageID) Bytes() []byte { return append([]byte(nil), id[:]...) }

func (id MessageID) String() string { return "0x" + hex.EncodeToString(id[:]) }

func (id MilestoneID) Bytes() []byte { return append([]byte(nil), id[:]...) }

func (id MilestoneID) String() string { return "0x" + hex.EncodeToString(id[:]) }

func blake2b256(data []byte) [32]byte { return blake2b.Sum256(data) }
