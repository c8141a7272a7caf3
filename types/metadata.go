package types

import (
	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

// LedgerInclusionState tells whether a message is part of the ledger state.
type LedgerInclusionState uint8

const (
	LedgerInclusionStateNoTransaction LedgerInclusionState = iota
	LedgerInclusionStateIncluded
	LedgerInclusionStateConflicting
)

func (s LedgerInclusionState) String() string {
	switch s {
	case LedgerInclusionStateNoTransaction:
		return "NoTransaction"
	case LedgerInclusionStateIncluded:
		return "Included"
	case LedgerInclusionStateConflicting:
		return "Conflicting"
	default:
		return "LedgerInclusionState(?)"
	}
}

// MessageMetadata is the node's view of a message.
type MessageMetadata struct {
	MessageID                  stardust.MessageID
	Parents                    []stardust.MessageID
	IsSolid                    bool
	ShouldPromote              bool
	ShouldReattach             bool
	ReferencedByMilestoneIndex uint32
	MilestoneIndex             uint32
	LedgerInclusionState       LedgerInclusionState
	ConflictReason             stardust.ConflictReason
}

// NewMessageMetadata converts a wire MessageMetadata. message_id is required
// and decoded before the parents, so an absent or malformed id is reported
// even when the parents are malformed too.
func NewMessageMetadata(w *inx.MessageMetadata) (MessageMetadata, error) {
	if err := requireFields(
		required{"message_id", w.GetMessageId() != nil},
	); err != nil {
		return MessageMetadata{}, err
	}
	id, err := messageID("message_id", w.GetMessageId())
	if err != nil {
		return MessageMetadata{}, err
	}
	parents, err := messageIDs("parents", w.GetParents())
	if err != nil {
		return MessageMetadata{}, err
	}
	state, err := LedgerInclusionStateFromWire(w.GetLedgerInclusionState())
	if err != nil {
		return MessageMetadata{}, err
	}
	reason, err := ConflictReasonFromWire(w.GetConflictReason())
	if err != nil {
		return MessageMetadata{}, err
	}
	return MessageMetadata{
		MessageID:                  id,
		Parents:                    parents,
		IsSolid:                    w.GetSolid(),
		ShouldPromote:              w.GetShouldPromote(),
		ShouldReattach:             w.GetShouldReattach(),
		ReferencedByMilestoneIndex: w.GetReferencedByMilestoneIndex(),
		MilestoneIndex:             w.GetMilestoneIndex(),
		LedgerInclusionState:       state,
		ConflictReason:             reason,
	}, nil
}

// ledgerInclusionStates must have an entry for every value declared in
// inx.LedgerInclusionState_name.
var ledgerInclusionStates = map[inx.LedgerInclusionState]LedgerInclusionState{
	inx.LedgerInclusionStateNoTransaction: LedgerInclusionStateNoTransaction,
	inx.LedgerInclusionStateIncluded:      LedgerInclusionStateIncluded,
	inx.LedgerInclusionStateConflicting:   LedgerInclusionStateConflicting,
}

// conflictReasons must have an entry for every value declared in
// inx.ConflictReason_name. Several wire reasons may share a ledger reason.
var conflictReasons = map[inx.ConflictReason]stardust.ConflictReason{
	inx.ConflictReasonNone:                             stardust.ConflictReasonNone,
	inx.ConflictReasonInputAlreadySpent:                stardust.ConflictReasonInputUTXOAlreadySpent,
	inx.ConflictReasonInputAlreadySpentInThisMilestone: stardust.ConflictReasonInputUTXOAlreadySpentInThisMilestone,
	inx.ConflictReasonInputNotFound:                    stardust.ConflictReasonInputUTXONotFound,
	inx.ConflictReasonInputOutputSumMismatch:           stardust.ConflictReasonCreatedConsumedAmountMismatch,
	inx.ConflictReasonInvalidSignature:                 stardust.ConflictReasonInvalidSignature,
	// INVALID_NETWORK_ID is being removed from INX and has no ledger reason
	// of its own; it is reported as a failed semantic validation.
	inx.ConflictReasonInvalidNetworkId:         stardust.ConflictReasonSemanticValidationFailed,
	inx.ConflictReasonSemanticValidationFailed: stardust.ConflictReasonSemanticValidationFailed,
}

// LedgerInclusionStateFromWire maps a wire inclusion state. Values outside
// the declared wire set fail with InvalidField.
func LedgerInclusionStateFromWire(s inx.LedgerInclusionState) (LedgerInclusionState, error) {
	v, ok := ledgerInclusionStates[s]
	if !ok {
		return 0, invalidField("ledger_inclusion_state")
	}
	return v, nil
}

// ConflictReasonFromWire maps a wire conflict reason. Values outside the
// declared wire set fail with InvalidField.
func ConflictReasonFromWire(r inx.ConflictReason) (stardust.ConflictReason, error) {
	v, ok := conflictReasons[r]
	if !ok {
		return 0, invalidField("conflict_reason")
	}
	return v, nil
}
