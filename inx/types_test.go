package inx

import (
	"bytes"
	"testing"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestFileDescriptor_IsValid(t *testing.T) {
	fd, err := protodesc.NewFile(FileDescriptorProto(), new(protoregistry.Files))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if fd.Services().ByName("INX").Methods().Len() != 8 {
		t.Fatalf("expected 8 INX methods")
	}
	if File.Path() != "inx.proto" || File.Package() != "inx" {
		t.Fatalf("registered file %s %s", File.Path(), File.Package())
	}
}

func TestMessages_MatchDescriptor(t *testing.T) {
	cases := []struct {
		msg  proto.Message
		name protoreflect.FullName
	}{
		{&NoParams{}, "inx.NoParams"},
		{&MessageId{}, "inx.MessageId"},
		{&Message{}, "inx.Message"},
		{&Milestone{}, "inx.Milestone"},
		{&MessageMetadata{}, "inx.MessageMetadata"},
		{&NodeStatus{}, "inx.NodeStatus"},
		{&NodeConfiguration{}, "inx.NodeConfiguration"},
		{&BaseToken{}, "inx.BaseToken"},
	}
	for _, c := range cases {
		if got := c.msg.ProtoReflect().Descriptor().FullName(); got != c.name {
			t.Fatalf("got %s want %s", got, c.name)
		}
	}
	md := (&MessageMetadata{}).ProtoReflect().Descriptor()
	if f := md.Fields().ByName("conflict_reason"); f == nil || f.Number() != 9 || f.Enum().FullName() != "inx.ConflictReason" {
		t.Fatalf("conflict_reason field wrong: %v", f)
	}
	if f := md.Fields().ByName("parents"); f == nil || !f.IsList() || f.Message().FullName() != "inx.MessageId" {
		t.Fatalf("parents field wrong: %v", f)
	}
	dep := ConflictReasonInvalidNetworkId.Descriptor().Values().ByNumber(6)
	if dep == nil || dep.Name() != "INVALID_NETWORK_ID" {
		t.Fatalf("INVALID_NETWORK_ID missing from descriptor")
	}
}

func TestMessageMetadata_RoundTrip(t *testing.T) {
	in := &MessageMetadata{
		MessageId:                  &MessageId{Id: bytes.Repeat([]byte{0x10}, 32)},
		Parents:                    []*MessageId{{Id: []byte{1}}, {Id: []byte{2}}},
		Solid:                      true,
		ShouldReattach:             true,
		ReferencedByMilestoneIndex: 100,
		MilestoneIndex:             101,
		LedgerInclusionState:       LedgerInclusionStateConflicting,
		ConflictReason:             ConflictReasonInvalidNetworkId,
	}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := new(MessageMetadata)
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip changed the record:\n in: %v\nout: %v", in, out)
	}
	if len(out.Parents) != 2 || out.Parents[0].GetId()[0] != 1 || out.Parents[1].GetId()[0] != 2 {
		t.Fatalf("parents not preserved in order: %v", out.Parents)
	}
}

func TestNodeConfiguration_RoundTrip(t *testing.T) {
	in := &NodeConfiguration{
		ProtocolParameters: &ProtocolParameters{
			Version:       2,
			NetworkName:   "shimmer",
			Bech32Hrp:     "smr",
			MinPowScore:   1500,
			BelowMaxDepth: 15,
			RentStructure: &RentStructure{VByteCost: 100, VByteFactorData: 1, VByteFactorKey: 10},
			TokenSupply:   1 << 50,
		},
		MilestonePublicKeyCount: 1,
		MilestoneKeyRanges:      []*MilestoneKeyRange{{PublicKey: bytes.Repeat([]byte{7}, 32), StartIndex: 1, EndIndex: 9}},
		BaseToken:               &BaseToken{Name: "Shimmer", TickerSymbol: "SMR", Unit: "SMR", Subunit: "glow", Decimals: 6},
	}
	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := new(NodeConfiguration)
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip changed the record:\n in: %v\nout: %v", in, out)
	}
	if out.GetProtocolParameters().GetRentStructure().GetVByteFactorKey() != 10 {
		t.Fatalf("rent structure lost")
	}
}

func TestEmptySubMessagePresenceSurvives(t *testing.T) {
	b, err := proto.Marshal(&NodeStatus{LatestMilestone: &MilestoneInfo{}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := new(NodeStatus)
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.GetLatestMilestone() == nil {
		t.Fatalf("empty latest_milestone decoded as absent")
	}
	if out.GetConfirmedMilestone() != nil {
		t.Fatalf("absent confirmed_milestone decoded as present")
	}
}

func TestUnmarshal_KeepsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0xAA})

	id := new(MessageId)
	if err := proto.Unmarshal(b, id); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !bytes.Equal(id.Id, []byte{0xAA}) {
		t.Fatalf("got %x", id.Id)
	}
	if len(id.ProtoReflect().GetUnknown()) == 0 {
		t.Fatalf("unknown field dropped")
	}
}

func TestUnmarshal_UndeclaredEnumDecodesAsNumber(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)

	m := new(MessageMetadata)
	if err := proto.Unmarshal(b, m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.GetConflictReason() != 7 {
		t.Fatalf("got %d", m.GetConflictReason())
	}
	if _, ok := ConflictReason_name[int32(m.GetConflictReason())]; ok {
		t.Fatalf("7 must not be a declared conflict reason")
	}
	if m.GetConflictReason().String() != "7" {
		t.Fatalf("String() = %q", m.GetConflictReason().String())
	}
}

func TestUnmarshal_RejectsInvalidUTF8(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0xFF, 0xFE})

	if err := proto.Unmarshal(b, new(BaseToken)); err == nil {
		t.Fatalf("expected error for invalid UTF-8 in a string field")
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	b, err := proto.Marshal(&RawMessage{Data: []byte("packed")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := proto.Unmarshal(b[:len(b)-1], new(RawMessage)); err == nil {
		t.Fatalf("expected error for truncated record")
	}
}

func TestUnmarshal_ResetsReceiver(t *testing.T) {
	m := &Milestone{MilestoneIndex: 5, MessageId: &MessageId{Id: []byte{1}}}
	if err := proto.Unmarshal(nil, m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.MilestoneIndex != 0 || m.MessageId != nil {
		t.Fatalf("stale fields survived: %v", m)
	}
}

func TestGetters_AreNilSafe(t *testing.T) {
	var md *MessageMetadata
	if md.GetMessageId().GetId() != nil || md.GetParents() != nil || md.GetLedgerInclusionState() != LedgerInclusionStateNoTransaction {
		t.Fatalf("nil getters must return zero values")
	}
	var nc *NodeConfiguration
	if nc.GetProtocolParameters().GetRentStructure().GetVByteCost() != 0 {
		t.Fatalf("nil getters must return zero values")
	}
}

func TestDefaultGRPCCodec_CarriesRecords(t *testing.T) {
	c := encoding.GetCodecV2("proto")
	if c == nil {
		t.Fatalf("default proto codec not registered")
	}
	data, err := c.Marshal(&MilestoneInfo{MilestoneIndex: 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	defer data.Free()
	info := new(MilestoneInfo)
	if err := c.Unmarshal(data, info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if info.MilestoneIndex != 3 {
		t.Fatalf("got %d", info.MilestoneIndex)
	}
}

func TestEnumNames(t *testing.T) {
	for v, name := range ConflictReason_name {
		if ConflictReason_value[name] != v {
			t.Fatalf("name/value tables disagree for %s", name)
		}
		if ConflictReason(v).String() != name {
			t.Fatalf("String() = %q want %q", ConflictReason(v).String(), name)
		}
		if d := ConflictReason(v).Descriptor().Values().ByNumber(protoreflect.EnumNumber(v)); d == nil || string(d.Name()) != name {
			t.Fatalf("descriptor disagrees for %s", name)
		}
	}
	for v, name := range LedgerInclusionState_name {
		if LedgerInclusionState_value[name] != v {
			t.Fatalf("name/value tables disagree for %s", name)
		}
	}
}
