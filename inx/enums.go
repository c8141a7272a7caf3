package inx

import (
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// LedgerInclusionState is MessageMetadata.ledger_inclusion_state on the wire.
// Proto3 enums are open: a value outside LedgerInclusionState_name decodes
// as its number and is rejected by the record assemblers, not the codec.
type LedgerInclusionState int32

const (
	LedgerInclusionStateNoTransaction LedgerInclusionState = 0
	LedgerInclusionStateIncluded      LedgerInclusionState = 1
	LedgerInclusionStateConflicting   LedgerInclusionState = 2
)

// LedgerInclusionState_name lists every declared wire value.
var LedgerInclusionState_name = map[int32]string{
	0: "NO_TRANSACTION",
	1: "INCLUDED",
	2: "CONFLICTING",
}

var LedgerInclusionState_value = map[string]int32{
	"NO_TRANSACTION": 0,
	"INCLUDED":       1,
	"CONFLICTING":    2,
}

func (x LedgerInclusionState) String() string {
	if s, ok := LedgerInclusionState_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

func (x LedgerInclusionState) Enum() *LedgerInclusionState { return &x }

func (LedgerInclusionState) Descriptor() protoreflect.EnumDescriptor {
	return enumTypes[0].Descriptor()
}

func (LedgerInclusionState) Type() protoreflect.EnumType { return &enumTypes[0] }

func (x LedgerInclusionState) Number() protoreflect.EnumNumber { return protoreflect.EnumNumber(x) }

// ConflictReason is MessageMetadata.conflict_reason on the wire.
type ConflictReason int32

const (
	ConflictReasonNone                             ConflictReason = 0
	ConflictReasonInputAlreadySpent                ConflictReason = 1
	ConflictReasonInputAlreadySpentInThisMilestone ConflictReason = 2
	ConflictReasonInputNotFound                    ConflictReason = 3
	ConflictReasonInputOutputSumMismatch           ConflictReason = 4
	ConflictReasonInvalidSignature                 ConflictReason = 5
	// Deprecated: scheduled for removal from INX.
	ConflictReasonInvalidNetworkId         ConflictReason = 6
	ConflictReasonSemanticValidationFailed ConflictReason = 255
)

// ConflictReason_name lists every declared wire value.
var ConflictReason_name = map[int32]string{
	0:   "NONE",
	1:   "INPUT_ALREADY_SPENT",
	2:   "INPUT_ALREADY_SPENT_IN_THIS_MILESTONE",
	3:   "INPUT_NOT_FOUND",
	4:   "INPUT_OUTPUT_SUM_MISMATCH",
	5:   "INVALID_SIGNATURE",
	6:   "INVALID_NETWORK_ID",
	255: "SEMANTIC_VALIDATION_FAILED",
}

var ConflictReason_value = map[string]int32{
	"NONE":                                  0,
	"INPUT_ALREADY_SPENT":                   1,
	"INPUT_ALREADY_SPENT_IN_THIS_MILESTONE": 2,
	"INPUT_NOT_FOUND":                       3,
	"INPUT_OUTPUT_SUM_MISMATCH":             4,
	"INVALID_SIGNATURE":                     5,
	"INVALID_NETWORK_ID":                    6,
	"SEMANTIC_VALIDATION_FAILED":            255,
}

func (x ConflictReason) String() string {
	if s, ok := ConflictReason_name[int32(x)]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

func (x ConflictReason) Enum() *ConflictReason { return &x }

func (ConflictReason) Descriptor() protoreflect.EnumDescriptor {
	return enumTypes[1].Descriptor()
}

func (ConflictReason) Type() protoreflect.EnumType { return &enumTypes[1] }

func (x ConflictReason) Number() protoreflect.EnumNumber { return protoreflect.EnumNumber(x) }
