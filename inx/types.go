// Package inx holds the wire records of the node extension interface (INX).
//
// The records are protobuf messages for inx.proto (see schema.go): scalar
// fields are plain values, sub-messages are pointers so that absence is
// observable, and every getter is safe to call on a nil receiver. They travel
// over gRPC's default proto codec.
package inx

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
)

func reflectMessage[T any](x *T, mi *protoimpl.MessageInfo) protoreflect.Message {
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func resetMessage[T any](x *T, mi *protoimpl.MessageInfo) {
	var zero T
	*x = zero
	protoimpl.X.MessageStateOf(protoimpl.Pointer(x)).StoreMessageInfo(mi)
}

type NoParams struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *NoParams) Reset() { resetMessage(x, &msgTypes[0]) }
func (x *NoParams) String() string { return protoimpl.X.MessageStringOf(x) }
func (*NoParams) ProtoMessage() {}

func (x *NoParams) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[0]) }

type MessageId struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id []byte `protobuf:"bytes,1,opt,name=id,proto3"`
}

func (x *MessageId) Reset() { resetMessage(x, &msgTypes[1]) }
func (x *MessageId) String() string { return protoimpl.X.MessageStringOf(x) }
func (*MessageId) ProtoMessage() {}

func (x *MessageId) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[1]) }

func (x *MessageId) GetId() []byte {
	if x == nil {
		return nil
	}
	return x.Id
}

type MilestoneId struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id []byte `protobuf:"bytes,1,opt,name=id,proto3"`
}

func (x *MilestoneId) Reset() { resetMessage(x, &msgTypes[2]) }
func (x *MilestoneId) String() string { return protoimpl.X.MessageStringOf(x) }
func (*MilestoneId) ProtoMessage() {}

func (x *MilestoneId) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[2]) }

func (x *MilestoneId) GetId() []byte {
	if x == nil {
		return nil
	}
	return x.Id
}

type RawMessage struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Data []byte `protobuf:"bytes,1,opt,name=data,proto3"`
}

func (x *RawMessage) Reset() { resetMessage(x, &msgTypes[3]) }
func (x *RawMessage) String() string { return protoimpl.X.MessageStringOf(x) }
func (*RawMessage) ProtoMessage() {}

func (x *RawMessage) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[3]) }

func (x *RawMessage) GetData() []byte {
	if x == nil {
		return nil
	}
	return x.Data
}

type Message struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MessageId *MessageId  `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3"`
	Message   *RawMessage `protobuf:"bytes,2,opt,name=message,proto3"`
}

func (x *Message) Reset() { resetMessage(x, &msgTypes[4]) }
func (x *Message) String() string { return protoimpl.X.MessageStringOf(x) }
func (*Message) ProtoMessage() {}

func (x *Message) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[4]) }

func (x *Message) GetMessageId() *MessageId {
	if x == nil {
		return nil
	}
	return x.MessageId
}

func (x *Message) GetMessage() *RawMessage {
	if x == nil {
		return nil
	}
	return x.Message
}

type Milestone struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MilestoneIndex     uint32       `protobuf:"varint,1,opt,name=milestone_index,json=milestoneIndex,proto3"`
	MilestoneTimestamp uint32       `protobuf:"varint,2,opt,name=milestone_timestamp,json=milestoneTimestamp,proto3"`
	MessageId          *MessageId   `protobuf:"bytes,3,opt,name=message_id,json=messageId,proto3"`
	MilestoneId        *MilestoneId `protobuf:"bytes,4,opt,name=milestone_id,json=milestoneId,proto3"`
}

func (x *Milestone) Reset() { resetMessage(x, &msgTypes[5]) }
func (x *Milestone) String() string { return protoimpl.X.MessageStringOf(x) }
func (*Milestone) ProtoMessage() {}

func (x *Milestone) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[5]) }

func (x *Milestone) GetMilestoneIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestoneIndex
}

func (x *Milestone) GetMilestoneTimestamp() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestoneTimestamp
}

func (x *Milestone) GetMessageId() *MessageId {
	if x == nil {
		return nil
	}
	return x.MessageId
}

func (x *Milestone) GetMilestoneId() *MilestoneId {
	if x == nil {
		return nil
	}
	return x.MilestoneId
}

type MessageMetadata struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MessageId                  *MessageId           `protobuf:"bytes,1,opt,name=message_id,json=messageId,proto3"`
	Parents                    []*MessageId         `protobuf:"bytes,2,rep,name=parents,proto3"`
	Solid                      bool                 `protobuf:"varint,3,opt,name=solid,proto3"`
	ShouldPromote              bool                 `protobuf:"varint,4,opt,name=should_promote,json=shouldPromote,proto3"`
	ShouldReattach             bool                 `protobuf:"varint,5,opt,name=should_reattach,json=shouldReattach,proto3"`
	ReferencedByMilestoneIndex uint32               `protobuf:"varint,6,opt,name=referenced_by_milestone_index,json=referencedByMilestoneIndex,proto3"`
	MilestoneIndex             uint32               `protobuf:"varint,7,opt,name=milestone_index,json=milestoneIndex,proto3"`
	LedgerInclusionState       LedgerInclusionState `protobuf:"varint,8,opt,name=ledger_inclusion_state,json=ledgerInclusionState,proto3,enum=inx.LedgerInclusionState"`
	ConflictReason             ConflictReason       `protobuf:"varint,9,opt,name=conflict_reason,json=conflictReason,proto3,enum=inx.ConflictReason"`
}

func (x *MessageMetadata) Reset() { resetMessage(x, &msgTypes[6]) }
func (x *MessageMetadata) String() string { return protoimpl.X.MessageStringOf(x) }
func (*MessageMetadata) ProtoMessage() {}

func (x *MessageMetadata) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[6]) }

func (x *MessageMetadata) GetMessageId() *MessageId {
	if x == nil {
		return nil
	}
	return x.MessageId
}

func (x *MessageMetadata) GetParents() []*MessageId {
	if x == nil {
		return nil
	}
	return x.Parents
}

func (x *MessageMetadata) GetSolid() bool {
	return x != nil && x.Solid
}

func (x *MessageMetadata) GetShouldPromote() bool {
	return x != nil && x.ShouldPromote
}

func (x *MessageMetadata) GetShouldReattach() bool {
	return x != nil && x.ShouldReattach
}

func (x *MessageMetadata) GetReferencedByMilestoneIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.ReferencedByMilestoneIndex
}

func (x *MessageMetadata) GetMilestoneIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestoneIndex
}

func (x *MessageMetadata) GetLedgerInclusionState() LedgerInclusionState {
	if x == nil {
		return LedgerInclusionStateNoTransaction
	}
	return x.LedgerInclusionState
}

func (x *MessageMetadata) GetConflictReason() ConflictReason {
	if x == nil {
		return ConflictReasonNone
	}
	return x.ConflictReason
}

type MilestoneInfo struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MilestoneIndex     uint32       `protobuf:"varint,1,opt,name=milestone_index,json=milestoneIndex,proto3"`
	MilestoneTimestamp uint32       `protobuf:"varint,2,opt,name=milestone_timestamp,json=milestoneTimestamp,proto3"`
	MilestoneId        *MilestoneId `protobuf:"bytes,3,opt,name=milestone_id,json=milestoneId,proto3"`
}

func (x *MilestoneInfo) Reset() { resetMessage(x, &msgTypes[7]) }
func (x *MilestoneInfo) String() string { return protoimpl.X.MessageStringOf(x) }
func (*MilestoneInfo) ProtoMessage() {}

func (x *MilestoneInfo) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[7]) }

func (x *MilestoneInfo) GetMilestoneIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestoneIndex
}

func (x *MilestoneInfo) GetMilestoneTimestamp() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestoneTimestamp
}

func (x *MilestoneInfo) GetMilestoneId() *MilestoneId {
	if x == nil {
		return nil
	}
	return x.MilestoneId
}

type NodeStatus struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	IsHealthy          bool           `protobuf:"varint,1,opt,name=is_healthy,json=isHealthy,proto3"`
	LatestMilestone    *MilestoneInfo `protobuf:"bytes,2,opt,name=latest_milestone,json=latestMilestone,proto3"`
	ConfirmedMilestone *MilestoneInfo `protobuf:"bytes,3,opt,name=confirmed_milestone,json=confirmedMilestone,proto3"`
	PruningIndex       uint32         `protobuf:"varint,4,opt,name=pruning_index,json=pruningIndex,proto3"`
	LedgerIndex        uint32         `protobuf:"varint,5,opt,name=ledger_index,json=ledgerIndex,proto3"`
}

func (x *NodeStatus) Reset() { resetMessage(x, &msgTypes[8]) }
func (x *NodeStatus) String() string { return protoimpl.X.MessageStringOf(x) }
func (*NodeStatus) ProtoMessage() {}

func (x *NodeStatus) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[8]) }

func (x *NodeStatus) GetIsHealthy() bool {
	return x != nil && x.IsHealthy
}

func (x *NodeStatus) GetLatestMilestone() *MilestoneInfo {
	if x == nil {
		return nil
	}
	return x.LatestMilestone
}

func (x *NodeStatus) GetConfirmedMilestone() *MilestoneInfo {
	if x == nil {
		return nil
	}
	return x.ConfirmedMilestone
}

func (x *NodeStatus) GetPruningIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.PruningIndex
}

func (x *NodeStatus) GetLedgerIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.LedgerIndex
}

type RentStructure struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	VByteCost       uint32 `protobuf:"varint,1,opt,name=v_byte_cost,json=vByteCost,proto3"`
	VByteFactorData uint32 `protobuf:"varint,2,opt,name=v_byte_factor_data,json=vByteFactorData,proto3"`
	VByteFactorKey  uint32 `protobuf:"varint,3,opt,name=v_byte_factor_key,json=vByteFactorKey,proto3"`
}

func (x *RentStructure) Reset() { resetMessage(x, &msgTypes[9]) }
func (x *RentStructure) String() string { return protoimpl.X.MessageStringOf(x) }
func (*RentStructure) ProtoMessage() {}

func (x *RentStructure) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[9]) }

func (x *RentStructure) GetVByteCost() uint32 {
	if x == nil {
		return 0
	}
	return x.VByteCost
}

func (x *RentStructure) GetVByteFactorData() uint32 {
	if x == nil {
		return 0
	}
	return x.VByteFactorData
}

func (x *RentStructure) GetVByteFactorKey() uint32 {
	if x == nil {
		return 0
	}
	return x.VByteFactorKey
}

type ProtocolParameters struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Version       uint32         `protobuf:"varint,1,opt,name=version,proto3"`
	NetworkName   string         `protobuf:"bytes,2,opt,name=network_name,json=networkName,proto3"`
	Bech32Hrp     string         `protobuf:"bytes,3,opt,name=bech32_hrp,json=bech32Hrp,proto3"`
	MinPowScore   uint64         `protobuf:"varint,4,opt,name=min_pow_score,json=minPowScore,proto3"`
	BelowMaxDepth uint32         `protobuf:"varint,5,opt,name=below_max_depth,json=belowMaxDepth,proto3"`
	RentStructure *RentStructure `protobuf:"bytes,6,opt,name=rent_structure,json=rentStructure,proto3"`
	TokenSupply   uint64         `protobuf:"varint,7,opt,name=token_supply,json=tokenSupply,proto3"`
}

func (x *ProtocolParameters) Reset() { resetMessage(x, &msgTypes[10]) }
func (x *ProtocolParameters) String() string { return protoimpl.X.MessageStringOf(x) }
func (*ProtocolParameters) ProtoMessage() {}

func (x *ProtocolParameters) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[10]) }

func (x *ProtocolParameters) GetVersion() uint32 {
	if x == nil {
		return 0
	}
	return x.Version
}

func (x *ProtocolParameters) GetNetworkName() string {
	if x == nil {
		return ""
	}
	return x.NetworkName
}

func (x *ProtocolParameters) GetBech32Hrp() string {
	if x == nil {
		return ""
	}
	return x.Bech32Hrp
}

func (x *ProtocolParameters) GetMinPowScore() uint64 {
	if x == nil {
		return 0
	}
	return x.MinPowScore
}

func (x *ProtocolParameters) GetBelowMaxDepth() uint32 {
	if x == nil {
		return 0
	}
	return x.BelowMaxDepth
}

func (x *ProtocolParameters) GetRentStructure() *RentStructure {
	if x == nil {
		return nil
	}
	return x.RentStructure
}

func (x *ProtocolParameters) GetTokenSupply() uint64 {
	if x == nil {
		return 0
	}
	return x.TokenSupply
}

type MilestoneKeyRange struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PublicKey  []byte `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3"`
	StartIndex uint32 `protobuf:"varint,2,opt,name=start_index,json=startIndex,proto3"`
	EndIndex   uint32 `protobuf:"varint,3,opt,name=end_index,json=endIndex,proto3"`
}

func (x *MilestoneKeyRange) Reset() { resetMessage(x, &msgTypes[11]) }
func (x *MilestoneKeyRange) String() string { return protoimpl.X.MessageStringOf(x) }
func (*MilestoneKeyRange) ProtoMessage() {}

func (x *MilestoneKeyRange) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[11]) }

func (x *MilestoneKeyRange) GetPublicKey() []byte {
	if x == nil {
		return nil
	}
	return x.PublicKey
}

func (x *MilestoneKeyRange) GetStartIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.StartIndex
}

func (x *MilestoneKeyRange) GetEndIndex() uint32 {
	if x == nil {
		return 0
	}
	return x.EndIndex
}

type BaseToken struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name            string `protobuf:"bytes,1,opt,name=name,proto3"`
	TickerSymbol    string `protobuf:"bytes,2,opt,name=ticker_symbol,json=tickerSymbol,proto3"`
	Unit            string `protobuf:"bytes,3,opt,name=unit,proto3"`
	Subunit         string `protobuf:"bytes,4,opt,name=subunit,proto3"`
	Decimals        uint32 `protobuf:"varint,5,opt,name=decimals,proto3"`
	UseMetricPrefix bool   `protobuf:"varint,6,opt,name=use_metric_prefix,json=useMetricPrefix,proto3"`
}

func (x *BaseToken) Reset() { resetMessage(x, &msgTypes[12]) }
func (x *BaseToken) String() string { return protoimpl.X.MessageStringOf(x) }
func (*BaseToken) ProtoMessage() {}

func (x *BaseToken) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[12]) }

func (x *BaseToken) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

func (x *BaseToken) GetTickerSymbol() string {
	if x == nil {
		return ""
	}
	return x.TickerSymbol
}

func (x *BaseToken) GetUnit() string {
	if x == nil {
		return ""
	}
	return x.Unit
}

func (x *BaseToken) GetSubunit() string {
	if x == nil {
		return ""
	}
	return x.Subunit
}

func (x *BaseToken) GetDecimals() uint32 {
	if x == nil {
		return 0
	}
	return x.Decimals
}

func (x *BaseToken) GetUseMetricPrefix() bool {
	return x != nil && x.UseMetricPrefix
}

type NodeConfiguration struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProtocolParameters      *ProtocolParameters  `protobuf:"bytes,1,opt,name=protocol_parameters,json=protocolParameters,proto3"`
	MilestonePublicKeyCount uint32               `protobuf:"varint,2,opt,name=milestone_public_key_count,json=milestonePublicKeyCount,proto3"`
	MilestoneKeyRanges      []*MilestoneKeyRange `protobuf:"bytes,3,rep,name=milestone_key_ranges,json=milestoneKeyRanges,proto3"`
	BaseToken               *BaseToken           `protobuf:"bytes,4,opt,name=base_token,json=baseToken,proto3"`
}

func (x *NodeConfiguration) Reset() { resetMessage(x, &msgTypes[13]) }
func (x *NodeConfiguration) String() string { return protoimpl.X.MessageStringOf(x) }
func (*NodeConfiguration) ProtoMessage() {}

func (x *NodeConfiguration) ProtoReflect() protoreflect.Message { return reflectMessage(x, &msgTypes[13]) }

func (x *NodeConfiguration) GetProtocolParameters() *ProtocolParameters {
	if x == nil {
		return nil
	}
	return x.ProtocolParameters
}

func (x *NodeConfiguration) GetMilestonePublicKeyCount() uint32 {
	if x == nil {
		return 0
	}
	return x.MilestonePublicKeyCount
}

func (x *NodeConfiguration) GetMilestoneKeyRanges() []*MilestoneKeyRange {
	if x == nil {
		return nil
	}
	return x.MilestoneKeyRanges
}

func (x *NodeConfiguration) GetBaseToken() *BaseToken {
	if x == nil {
		return nil
	}
	return x.BaseToken
}
