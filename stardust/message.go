package stardust

import "encoding/binary"

const (
	// MaxMessageLength is the largest packed message a node accepts.
	MaxMessageLength = 32768
	MinParents       = 1
	MaxParents       = 8
)

// Message is a decoded, verified ledger message.
type Message struct {
	ProtocolVersion uint8
	Parents         []MessageID
	// Payload is nil for messages without one.
	Payload Payload
	Nonce   uint64
}

// UnpackVerified decodes data as a packed message and runs every structural
// self-check in the same pass: parent count and ordering, payload length
// framing, payload-specific rules and the absence of trailing bytes.
func UnpackVerified(data []byte) (*Message, error) {
	if len(data) > MaxMessageLength {
		return nil, ErrMessageTooLarge
	}
	u := &unpacker{buf: data}

	version, err := u.u8()
	if err != nil {
		return nil, err
	}
	parents, err := u.parents()
	if err != nil {
		return nil, err
	}
	payload, err := unpackPayload(u)
	if err != nil {
		return nil, err
	}
	nonce, err := u.u64()
	if err != nil {
		return nil, err
	}
	if err := u.done(); err != nil {
		return nil, err
	}
	return &Message{
		ProtocolVersion: version,
		Parents:         parents,
		Payload:         payload,
		Nonce:           nonce,
	}, nil
}

// Pack encodes m. For any m returned by UnpackVerified, Pack returns the
// original bytes.
func (m *Message) Pack() []byte {
	b := []byte{m.ProtocolVersion}
	b = appendParents(b, m.Parents)
	b = appendPayload(b, m.Payload)
	return binary.LittleEndian.AppendUint64(b, m.Nonce)
}

// ID returns the BLAKE2b-256 digest of the packed message.
func (m *Message) ID() MessageID {
	return MessageID(blake2b256(m.Pack()))
}
