// Package cidutil derives content identifiers for packed ledger messages.
//
// A message id is the BLAKE2b-256 digest of the packed message, so the CIDv1
// (raw codec, blake2b-256 multihash) of the raw bytes carries exactly the
// message id as its digest. Archives that store raw messages by CID can move
// between the two forms without rehashing.
package cidutil

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/blake2b"

	"permanode.io/inx/stardust"
)

// Blake2b256 is the multihash code for a 32-byte BLAKE2b digest.
const Blake2b256 = multihash.BLAKE2B_MIN + 31

var ErrNotMessageCID = errors.New("cidutil: not a raw blake2b-256 CIDv1")

// MessageCID returns the CIDv1 (raw + blake2b-256) of packed message bytes.
func MessageCID(data []byte) (cid.Cid, error) {
	sum := blake2b.Sum256(data)
	return fromDigest(sum[:])
}

// CIDFromMessageID returns the CID of the message identified by id.
func CIDFromMessageID(id stardust.MessageID) (cid.Cid, error) {
	return fromDigest(id[:])
}

// MessageIDFromCID is the inverse of CIDFromMessageID.
func MessageIDFromCID(c cid.Cid) (stardust.MessageID, error) {
	if !c.Defined() || c.Version() != 1 || c.Type() != cid.Raw {
		return stardust.MessageID{}, ErrNotMessageCID
	}
	dec, err := multihash.Decode(c.Hash())
	if err != nil {
		return stardust.MessageID{}, err
	}
	if dec.Code != Blake2b256 {
		return stardust.MessageID{}, ErrNotMessageCID
	}
	return stardust.MessageIDFromBytes(dec.Digest)
}

func fromDigest(digest []byte) (cid.Cid, error) {
	mh, err := multihash.Encode(digest, Blake2b256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}
