package stardust

import (
	"bytes"
	"encoding/binary"
)

// unpacker reads little-endian fields from a buffer. Every read fails with
// ErrTruncated instead of running past the end.
type unpacker struct {
	buf []byte
	off int
}

func (u *unpacker) remaining() int { return len(u.buf) - u.off }

func (u *unpacker) next(n int) ([]byte, error) {
	if n < 0 || u.remaining() < n {
		return nil, ErrTruncated
	}
	b := u.buf[u.off : u.off+n]
	u.off += n
	return b, nil
}

func (u *unpacker) u8() (uint8, error) {
	b, err := u.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (u *unpacker) u16() (uint16, error) {
	b, err := u.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (u *unpacker) u32() (uint32, error) {
	b, err := u.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (u *unpacker) u64() (uint64, error) {
	b, err := u.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// bytes returns a copy so decoded values never alias the input buffer.
func (u *unpacker) bytes(n int) ([]byte, error) {
	b, err := u.next(n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

func (u *unpacker) done() error {
	if u.remaining() != 0 {
		return ErrTrailingBytes
	}
	return nil
}

// parents reads a u8-counted list of message ids that must hold between
// MinParents and MaxParents entries in strictly ascending order.
func (u *unpacker) parents() ([]MessageID, error) {
	count, err := u.u8()
	if err != nil {
		return nil, err
	}
	if count < MinParents || count > MaxParents {
		return nil, ErrInvalidParentCount
	}
	out := make([]MessageID, count)
	for i := range out {
		b, err := u.next(MessageIDLength)
		if err != nil {
			return nil, err
		}
		copy(out[i][:], b)
		if i > 0 && bytes.Compare(out[i-1][:], out[i][:]) >= 0 {
			return nil, ErrParentsNotSorted
		}
	}
	return out, nil
}

func appendParents(b []byte, parents []MessageID) []byte {
	b = append(b, uint8(len(parents)))
	for _, p := range parents {
		b = append(b, p[:]...)
	}
	return b
}
