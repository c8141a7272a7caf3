package stardust

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
)

const (
	MerkleRootLength = 32

	// SignatureEd25519 is the only signature kind a milestone may carry.
	SignatureEd25519 uint8 = 0
)

// MilestoneEssence is the signed part of a milestone payload.
type MilestoneEssence struct {
	Index               uint32
	Timestamp           uint32
	Parents             []MessageID
	InclusionMerkleRoot [MerkleRootLength]byte
	AppliedMerkleRoot   [MerkleRootLength]byte
	Metadata            []byte
}

type Ed25519Signature struct {
	PublicKey ed25519.PublicKey
	Signature []byte
}

// MilestonePayload is a milestone issued by the coordinator.
type MilestonePayload struct {
	Essence    MilestoneEssence
	Signatures []Ed25519Signature
}

func (*MilestonePayload) PayloadType() uint32 { return PayloadMilestone }

// ID returns the BLAKE2b-256 digest of the packed essence.
func (p *MilestonePayload) ID() MilestoneID {
	return MilestoneID(blake2b256(p.Essence.pack(nil)))
}

// VerifySignatures checks the milestone against the coordinator keys in
// ranges. Every signature must come from a key whose range contains the
// milestone index and must sign the milestone ID. At least minSignatures
// distinct keys must have signed.
//
// Unpacking never calls this; it is for callers that hold the node's key
// ranges.
func (p *MilestonePayload) VerifySignatures(ranges []MilestoneKeyRange, minSignatures int) error {
	applicable := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		if r.Contains(p.Essence.Index) {
			applicable[string(r.PublicKey)] = true
		}
	}

	id := p.ID()
	signed := make(map[string]bool, len(p.Signatures))
	for _, s := range p.Signatures {
		if !applicable[string(s.PublicKey)] {
			return fmt.Errorf("%w: %x at index %d", ErrUnknownMilestoneKey, []byte(s.PublicKey), p.Essence.Index)
		}
		if !ed25519.Verify(s.PublicKey, id[:], s.Signature) {
			return fmt.Errorf("%w: key %x", ErrInvalidMilestoneSignature, []byte(s.PublicKey))
		}
		signed[string(s.PublicKey)] = true
	}
	if len(signed) < minSignatures {
		return fmt.Errorf("%w: %d of %d", ErrNotEnoughSignatures, len(signed), minSignatures)
	}
	return nil
}

func (e *MilestoneEssence) pack(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, e.Index)
	b = binary.LittleEndian.AppendUint32(b, e.Timestamp)
	b = appendParents(b, e.Parents)
	b = append(b, e.InclusionMerkleRoot[:]...)
	b = append(b, e.AppliedMerkleRoot[:]...)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(e.Metadata)))
	return append(b, e.Metadata...)
}

func (p *MilestonePayload) appendBody(b []byte) []byte {
	b = p.Essence.pack(b)
	b = append(b, uint8(len(p.Signatures)))
	for _, s := range p.Signatures {
		b = append(b, SignatureEd25519)
		b = append(b, s.PublicKey...)
		b = append(b, s.Signature...)
	}
	return b
}

func unpackMilestone(u *unpacker) (*MilestonePayload, error) {
	var (
		p   MilestonePayload
		err error
	)
	e := &p.Essence
	if e.Index, err = u.u32(); err != nil {
		return nil, err
	}
	if e.Timestamp, err = u.u32(); err != nil {
		return nil, err
	}
	if e.Parents, err = u.parents(); err != nil {
		return nil, err
	}
	root, err := u.next(MerkleRootLength)
	if err != nil {
		return nil, err
	}
	copy(e.InclusionMerkleRoot[:], root)
	if root, err = u.next(MerkleRootLength); err != nil {
		return nil, err
	}
	copy(e.AppliedMerkleRoot[:], root)
	metaLen, err := u.u16()
	if err != nil {
		return nil, err
	}
	if e.Metadata, err = u.bytes(int(metaLen)); err != nil {
		return nil, err
	}

	count, err := u.u8()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrInvalidSignatureCount
	}
	p.Signatures = make([]Ed25519Signature, count)
	for i := range p.Signatures {
		kind, err := u.u8()
		if err != nil {
			return nil, err
		}
		if kind != SignatureEd25519 {
			return nil, ErrUnsupportedSignature
		}
		pub, err := u.bytes(ed25519.PublicKeySize)
		if err != nil {
			return nil, err
		}
		sig, err := u.bytes(ed25519.SignatureSize)
		if err != nil {
			return nil, err
		}
		p.Signatures[i] = Ed25519Signature{PublicKey: pub, Signature: sig}
		if i > 0 && bytes.Compare(p.Signatures[i-1].PublicKey, pub) >= 0 {
			return nil, ErrSignaturesNotSorted
		}
	}
	return &p, nil
}
