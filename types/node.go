package types

import (
	"math"

	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

// MilestoneInfo describes a milestone a node has seen.
type MilestoneInfo struct {
	MilestoneIndex     uint32
	MilestoneTimestamp uint32
	// MilestoneID is nil until the node has seen a milestone.
	MilestoneID *stardust.MilestoneID
}

// NewMilestoneInfo converts a wire MilestoneInfo. Every field is optional;
// a present milestone_id must be exactly 32 bytes.
func NewMilestoneInfo(w *inx.MilestoneInfo) (MilestoneInfo, error) {
	info := MilestoneInfo{
		MilestoneIndex:     w.GetMilestoneIndex(),
		MilestoneTimestamp: w.GetMilestoneTimestamp(),
	}
	if w.GetMilestoneId() != nil {
		id, err := milestoneID("milestone_id", w.GetMilestoneId())
		if err != nil {
			return MilestoneInfo{}, err
		}
		info.MilestoneID = &id
	}
	return info, nil
}

// NodeStatus is a snapshot of a node's health.
type NodeStatus struct {
	IsHealthy          bool
	LatestMilestone    MilestoneInfo
	ConfirmedMilestone MilestoneInfo
	PruningIndex       uint32
	LedgerIndex        uint32
}

// NewNodeStatus converts a wire NodeStatus. latest_milestone and
// confirmed_milestone are required.
func NewNodeStatus(w *inx.NodeStatus) (NodeStatus, error) {
	if err := requireFields(
		required{"latest_milestone", w.GetLatestMilestone() != nil},
		required{"confirmed_milestone", w.GetConfirmedMilestone() != nil},
	); err != nil {
		return NodeStatus{}, err
	}
	latest, err := NewMilestoneInfo(w.GetLatestMilestone())
	if err != nil {
		return NodeStatus{}, err
	}
	confirmed, err := NewMilestoneInfo(w.GetConfirmedMilestone())
	if err != nil {
		return NodeStatus{}, err
	}
	return NodeStatus{
		IsHealthy:          w.GetIsHealthy(),
		LatestMilestone:    latest,
		ConfirmedMilestone: confirmed,
		PruningIndex:       w.GetPruningIndex(),
		LedgerIndex:        w.GetLedgerIndex(),
	}, nil
}

// BaseToken is the display metadata of the network's token.
type BaseToken struct {
	Name            string
	TickerSymbol    string
	Unit            string
	SubUnit         string
	Decimals        uint32
	UseMetricPrefix bool
}

// NewBaseToken copies every field verbatim.
func NewBaseToken(w *inx.BaseToken) (BaseToken, error) {
	return BaseToken{
		Name:            w.GetName(),
		TickerSymbol:    w.GetTickerSymbol(),
		Unit:            w.GetUnit(),
		SubUnit:         w.GetSubunit(),
		Decimals:        w.GetDecimals(),
		UseMetricPrefix: w.GetUseMetricPrefix(),
	}, nil
}

// NodeConfiguration is the protocol configuration a node runs with.
type NodeConfiguration struct {
	ProtocolParameters      stardust.ProtocolParameters
	MilestonePublicKeyCount uint32
	MilestoneKeyRanges      []stardust.MilestoneKeyRange
	BaseToken               BaseToken
}

// NewNodeConfiguration converts a wire NodeConfiguration.
// protocol_parameters and base_token are required; key ranges are converted
// in order and the first bad range fails the record.
func NewNodeConfiguration(w *inx.NodeConfiguration) (NodeConfiguration, error) {
	if err := requireFields(
		required{"protocol_parameters", w.GetProtocolParameters() != nil},
		required{"base_token", w.GetBaseToken() != nil},
	); err != nil {
		return NodeConfiguration{}, err
	}
	params, err := NewProtocolParameters(w.GetProtocolParameters())
	if err != nil {
		return NodeConfiguration{}, err
	}
	ranges := make([]stardust.MilestoneKeyRange, 0, len(w.GetMilestoneKeyRanges()))
	for _, r := range w.GetMilestoneKeyRanges() {
		kr, err := stardust.NewMilestoneKeyRange(r.GetPublicKey(), r.GetStartIndex(), r.GetEndIndex())
		if err != nil {
			return NodeConfiguration{}, invalidBufferLength("milestone_key_ranges", err)
		}
		if kr.EndIndex != 0 && kr.StartIndex > kr.EndIndex {
			return NodeConfiguration{}, invalidField("milestone_key_ranges")
		}
		ranges = append(ranges, kr)
	}
	token, err := NewBaseToken(w.GetBaseToken())
	if err != nil {
		return NodeConfiguration{}, err
	}
	return NodeConfiguration{
		ProtocolParameters:      params,
		MilestonePublicKeyCount: w.GetMilestonePublicKeyCount(),
		MilestoneKeyRanges:      ranges,
		BaseToken:               token,
	}, nil
}

// NewProtocolParameters converts wire protocol parameters. rent_structure is
// required. Fields the ledger stores in a single byte fail with InvalidField
// when the wire value does not fit.
func NewProtocolParameters(w *inx.ProtocolParameters) (stardust.ProtocolParameters, error) {
	if err := requireFields(
		required{"rent_structure", w.GetRentStructure() != nil},
	); err != nil {
		return stardust.ProtocolParameters{}, err
	}
	version, err := byteField("version", w.GetVersion())
	if err != nil {
		return stardust.ProtocolParameters{}, err
	}
	depth, err := byteField("below_max_depth", w.GetBelowMaxDepth())
	if err != nil {
		return stardust.ProtocolParameters{}, err
	}
	rent := w.GetRentStructure()
	factorData, err := byteField("v_byte_factor_data", rent.GetVByteFactorData())
	if err != nil {
		return stardust.ProtocolParameters{}, err
	}
	factorKey, err := byteField("v_byte_factor_key", rent.GetVByteFactorKey())
	if err != nil {
		return stardust.ProtocolParameters{}, err
	}
	return stardust.ProtocolParameters{
		Version:       version,
		NetworkName:   w.GetNetworkName(),
		Bech32HRP:     w.GetBech32Hrp(),
		MinPoWScore:   w.GetMinPowScore(),
		BelowMaxDepth: depth,
		RentStructure: stardust.RentStructure{
			VByteCost:       rent.GetVByteCost(),
			VByteFactorData: factorData,
			VByteFactorKey:  factorKey,
		},
		TokenSupply: w.GetTokenSupply(),
	}, nil
}

func byteField(field string, v uint32) (uint8, error) {
	if v > math.MaxUint8 {
		return 0, invalidField(field)
	}
	return uint8(v), nil
}
