package stardust

import "strconv"

// ConflictReason explains why a message carrying a transaction was not
// applied to the ledger.
type ConflictReason uint8

const (
	ConflictReasonNone                                 ConflictReason = 0
	ConflictReasonInputUTXOAlreadySpent                ConflictReason = 1
	ConflictReasonInputUTXOAlreadySpentInThisMilestone ConflictReason = 2
	ConflictReasonInputUTXONotFound                    ConflictReason = 3
	ConflictReasonCreatedConsumedAmountMismatch        ConflictReason = 4
	ConflictReasonInvalidSignature                     ConflictReason = 5
	ConflictReasonSemanticValidationFailed             ConflictReason = 255
)

var conflictReasonNames = map[ConflictReason]string{
	ConflictReasonNone:                                 "None",
	ConflictReasonInputUTXOAlreadySpent:                "InputUTXOAlreadySpent",
	ConflictReasonInputUTXOAlreadySpentInThisMilestone: "InputUTXOAlreadySpentInThisMilestone",
	ConflictReasonInputUTXONotFound:                    "InputUTXONotFound",
	ConflictReasonCreatedConsumedAmountMismatch:        "CreatedConsumedAmountMismatch",
	ConflictReasonInvalidSignature:                     "InvalidSignature",
	ConflictReasonSemanticValidationFailed:             "SemanticValidationFailed",
}

func (r ConflictReason) String() string {
	if s, ok := conflictReasonNames[r]; ok {
		return s
	}
	return "ConflictReason(" + strconv.Itoa(int(r)) + ")"
}
