// Package stardust implements the ledger primitives INX records carry:
// fixed-length identifiers, the binary message format with its structural
// self-checks, and the ledger's conflict reasons.
//
// Decoding is strict. UnpackVerified either returns a message that passed
// every self-check or an error; there is no decoded-but-unverified state.
package stardust
