package stardust

import (
	"encoding/binary"
	"errors"
)

// Payload type prefixes.
const (
	PayloadTreasuryTransaction uint32 = 4
	PayloadTaggedData          uint32 = 5
	PayloadTransaction         uint32 = 6
	PayloadMilestone           uint32 = 7
)

const MaxTagLength = 64

// Payload is the typed content carried by a message.
type Payload interface {
	PayloadType() uint32
	appendBody(b []byte) []byte
}

// TaggedData is an arbitrary data payload with an optional short tag.
type TaggedData struct {
	Tag  []byte
	Data []byte
}

func (*TaggedData) PayloadType() uint32 { return PayloadTaggedData }

func (p *TaggedData) appendBody(b []byte) []byte {
	b = append(b, uint8(len(p.Tag)))
	b = append(b, p.Tag...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(p.Data)))
	return append(b, p.Data...)
}

func unpackTaggedData(u *unpacker) (*TaggedData, error) {
	tagLen, err := u.u8()
	if err != nil {
		return nil, err
	}
	if tagLen > MaxTagLength {
		return nil, ErrTagTooLong
	}
	tag, err := u.bytes(int(tagLen))
	if err != nil {
		return nil, err
	}
	dataLen, err := u.u32()
	if err != nil {
		return nil, err
	}
	if uint64(dataLen) > uint64(u.remaining()) {
		return nil, ErrTruncated
	}
	data, err := u.bytes(int(dataLen))
	if err != nil {
		return nil, err
	}
	return &TaggedData{Tag: tag, Data: data}, nil
}

// OpaquePayload keeps the body of payload kinds whose inner layout is ledger
// business (transactions) and not inspected here beyond framing.
type OpaquePayload struct {
	Type uint32
	Body []byte
}

func (p *OpaquePayload) PayloadType() uint32 { return p.Type }

func (p *OpaquePayload) appendBody(b []byte) []byte { return append(b, p.Body...) }

func unpackPayload(u *unpacker) (Payload, error) {
	length, err := u.u32()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	if length < 4 {
		return nil, ErrPayloadLengthMismatch
	}
	if uint64(length) > uint64(u.remaining()) {
		return nil, ErrTruncated
	}
	body, err := u.next(int(length))
	if err != nil {
		return nil, err
	}

	p := &unpacker{buf: body}
	typ, err := p.u32()
	if err != nil {
		return nil, err
	}
	var payload Payload
	switch typ {
	case PayloadTaggedData:
		payload, err = unpackTaggedData(p)
	case PayloadMilestone:
		payload, err = unpackMilestone(p)
	case PayloadTransaction, PayloadTreasuryTransaction:
		if p.remaining() == 0 {
			return nil, ErrEmptyOpaquePayload
		}
		var rest []byte
		rest, err = p.bytes(p.remaining())
		payload = &OpaquePayload{Type: typ, Body: rest}
	default:
		return nil, ErrUnsupportedPayload
	}
	if err != nil {
		return nil, err
	}
	if err := p.done(); err != nil {
		if errors.Is(err, ErrTrailingBytes) {
			return nil, ErrPayloadLengthMismatch
		}
		return nil, err
	}
	return payload, nil
}

func appendPayload(b []byte, p Payload) []byte {
	if p == nil {
		return binary.LittleEndian.AppendUint32(b, 0)
	}
	body := binary.LittleEndian.AppendUint32(nil, p.PayloadType())
	body = p.appendBody(body)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(body)))
	return append(b, body...)
}
