package stardust

import "github.com/cloudflare/circl/sign/ed25519"

// MilestoneKeyRange is a public key allowed to sign milestones in
// [StartIndex, EndIndex]. An EndIndex of zero leaves the range open.
type MilestoneKeyRange struct {
	PublicKey  ed25519.PublicKey
	StartIndex uint32
	EndIndex   uint32
}

// NewMilestoneKeyRange fails with ErrInvalidLength unless publicKey is exactly
// ed25519.PublicKeySize bytes.
func NewMilestoneKeyRange(publicKey []byte, start, end uint32) (MilestoneKeyRange, error) {
	var pub [ed25519.PublicKeySize]byte
	if err := fixedBytes(pub[:], publicKey); err != nil {
		return MilestoneKeyRange{}, err
	}
	return MilestoneKeyRange{PublicKey: pub[:], StartIndex: start, EndIndex: end}, nil
}

// Contains reports whether the key may sign the milestone with the given index.
func (r MilestoneKeyRange) Contains(index uint32) bool {
	if index < r.StartIndex {
		return false
	}
	return r.EndIndex == 0 || index <= r.EndIndex
}
