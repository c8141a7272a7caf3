package inx

import (
	"reflect"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File is the descriptor of inx.proto. It is populated at init from the
// descriptor built by FileDescriptorProto.
var File protoreflect.FileDescriptor

var (
	enumTypes = make([]protoimpl.EnumInfo, 2)
	msgTypes  = make([]protoimpl.MessageInfo, 14)
)

// goTypes lists enums first, then messages, in declaration order.
var goTypes = []any{
	(LedgerInclusionState)(0),  // 0: inx.LedgerInclusionState
	(ConflictReason)(0),        // 1: inx.ConflictReason
	(*NoParams)(nil),           // 2: inx.NoParams
	(*MessageId)(nil),          // 3: inx.MessageId
	(*MilestoneId)(nil),        // 4: inx.MilestoneId
	(*RawMessage)(nil),         // 5: inx.RawMessage
	(*Message)(nil),            // 6: inx.Message
	(*Milestone)(nil),          // 7: inx.Milestone
	(*MessageMetadata)(nil),    // 8: inx.MessageMetadata
	(*MilestoneInfo)(nil),      // 9: inx.MilestoneInfo
	(*NodeStatus)(nil),         // 10: inx.NodeStatus
	(*RentStructure)(nil),      // 11: inx.RentStructure
	(*ProtocolParameters)(nil), // 12: inx.ProtocolParameters
	(*MilestoneKeyRange)(nil),  // 13: inx.MilestoneKeyRange
	(*BaseToken)(nil),          // 14: inx.BaseToken
	(*NodeConfiguration)(nil),  // 15: inx.NodeConfiguration
}

// depIdxs resolves every message or enum typed field, then every method
// input and output, to an index in goTypes. The trailing five entries are
// the sub-list offsets read back to front.
var depIdxs = []int32{
	3,  // 0: inx.Message.message_id:type_name -> inx.MessageId
	5,  // 1: inx.Message.message:type_name -> inx.RawMessage
	3,  // 2: inx.Milestone.message_id:type_name -> inx.MessageId
	4,  // 3: inx.Milestone.milestone_id:type_name -> inx.MilestoneId
	3,  // 4: inx.MessageMetadata.message_id:type_name -> inx.MessageId
	3,  // 5: inx.MessageMetadata.parents:type_name -> inx.MessageId
	0,  // 6: inx.MessageMetadata.ledger_inclusion_state:type_name -> inx.LedgerInclusionState
	1,  // 7: inx.MessageMetadata.conflict_reason:type_name -> inx.ConflictReason
	4,  // 8: inx.MilestoneInfo.milestone_id:type_name -> inx.MilestoneId
	9,  // 9: inx.NodeStatus.latest_milestone:type_name -> inx.MilestoneInfo
	9,  // 10: inx.NodeStatus.confirmed_milestone:type_name -> inx.MilestoneInfo
	11, // 11: inx.ProtocolParameters.rent_structure:type_name -> inx.RentStructure
	12, // 12: inx.NodeConfiguration.protocol_parameters:type_name -> inx.ProtocolParameters
	13, // 13: inx.NodeConfiguration.milestone_key_ranges:type_name -> inx.MilestoneKeyRange
	14, // 14: inx.NodeConfiguration.base_token:type_name -> inx.BaseToken
	2,  // 15: inx.INX.ReadNodeStatus:input_type -> inx.NoParams
	2,  // 16: inx.INX.ReadNodeConfiguration:input_type -> inx.NoParams
	3,  // 17: inx.INX.ReadMessage:input_type -> inx.MessageId
	3,  // 18: inx.INX.ReadMessageMetadata:input_type -> inx.MessageId
	2,  // 19: inx.INX.ListenToMessages:input_type -> inx.NoParams
	2,  // 20: inx.INX.ListenToSolidMessages:input_type -> inx.NoParams
	2,  // 21: inx.INX.ListenToLatestMilestone:input_type -> inx.NoParams
	2,  // 22: inx.INX.ListenToConfirmedMilestone:input_type -> inx.NoParams
	10, // 23: inx.INX.ReadNodeStatus:output_type -> inx.NodeStatus
	15, // 24: inx.INX.ReadNodeConfiguration:output_type -> inx.NodeConfiguration
	5,  // 25: inx.INX.ReadMessage:output_type -> inx.RawMessage
	8,  // 26: inx.INX.ReadMessageMetadata:output_type -> inx.MessageMetadata
	6,  // 27: inx.INX.ListenToMessages:output_type -> inx.Message
	8,  // 28: inx.INX.ListenToSolidMessages:output_type -> inx.MessageMetadata
	7,  // 29: inx.INX.ListenToLatestMilestone:output_type -> inx.Milestone
	7,  // 30: inx.INX.ListenToConfirmedMilestone:output_type -> inx.Milestone
	23, // [23:31] is the sub-list for method output_type
	15, // [15:23] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() {
	rawDesc, err := proto.MarshalOptions{Deterministic: true}.Marshal(FileDescriptorProto())
	if err != nil {
		panic("inx: encode inx.proto descriptor: " + err.Error())
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: rawDesc,
			NumEnums:      2,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           goTypes,
		DependencyIndexes: depIdxs,
		EnumInfos:         enumTypes,
		MessageInfos:      msgTypes,
	}.Build()
	File = out.File
	goTypes = nil
	depIdxs = nil
}

// FileDescriptorProto returns inx.proto as a descriptor. Enum and message
// order must match goTypes.
func FileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("inx.proto"),
		Package: proto.String("inx"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{GoPackage: proto.String("permanode.io/inx/inx")},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enumType("LedgerInclusionState", LedgerInclusionState_name, nil),
			enumType("ConflictReason", ConflictReason_name, map[int32]bool{int32(ConflictReasonInvalidNetworkId): true}),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("NoParams"),
			message("MessageId", bytesField("id", 1)),
			message("MilestoneId", bytesField("id", 1)),
			message("RawMessage", bytesField("data", 1)),
			message("Message",
				messageField("message_id", 1, "MessageId"),
				messageField("message", 2, "RawMessage"),
			),
			message("Milestone",
				scalarField("milestone_index", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("milestone_timestamp", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				messageField("message_id", 3, "MessageId"),
				messageField("milestone_id", 4, "MilestoneId"),
			),
			message("MessageMetadata",
				messageField("message_id", 1, "MessageId"),
				repeated(messageField("parents", 2, "MessageId")),
				scalarField("solid", 3, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				scalarField("should_promote", 4, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				scalarField("should_reattach", 5, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				scalarField("referenced_by_milestone_index", 6, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("milestone_index", 7, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				enumField("ledger_inclusion_state", 8, "LedgerInclusionState"),
				enumField("conflict_reason", 9, "ConflictReason"),
			),
			message("MilestoneInfo",
				scalarField("milestone_index", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("milestone_timestamp", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				messageField("milestone_id", 3, "MilestoneId"),
			),
			message("NodeStatus",
				scalarField("is_healthy", 1, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				messageField("latest_milestone", 2, "MilestoneInfo"),
				messageField("confirmed_milestone", 3, "MilestoneInfo"),
				scalarField("pruning_index", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("ledger_index", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			),
			message("RentStructure",
				scalarField("v_byte_cost", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("v_byte_factor_data", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("v_byte_factor_key", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			),
			message("ProtocolParameters",
				scalarField("version", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("network_name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("bech32_hrp", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("min_pow_score", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("below_max_depth", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				messageField("rent_structure", 6, "RentStructure"),
				scalarField("token_supply", 7, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			),
			message("MilestoneKeyRange",
				bytesField("public_key", 1),
				scalarField("start_index", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("end_index", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
			),
			message("BaseToken",
				scalarField("name", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("ticker_symbol", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("unit", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("subunit", 4, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("decimals", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("use_metric_prefix", 6, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
			),
			message("NodeConfiguration",
				messageField("protocol_parameters", 1, "ProtocolParameters"),
				scalarField("milestone_public_key_count", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				repeated(messageField("milestone_key_ranges", 3, "MilestoneKeyRange")),
				messageField("base_token", 4, "BaseToken"),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("INX"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("ReadNodeStatus", "NoParams", "NodeStatus", false),
				method("ReadNodeConfiguration", "NoParams", "NodeConfiguration", false),
				method("ReadMessage", "MessageId", "RawMessage", false),
				method("ReadMessageMetadata", "MessageId", "MessageMetadata", false),
				method("ListenToMessages", "NoParams", "Message", true),
				method("ListenToSolidMessages", "NoParams", "MessageMetadata", true),
				method("ListenToLatestMilestone", "NoParams", "Milestone", true),
				method("ListenToConfirmedMilestone", "NoParams", "Milestone", true),
			},
		}},
	}
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func scalarField(name string, number int32, kind descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   kind.Enum(),
	}
}

func bytesField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_BYTES)
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(".inx." + typeName)
	return f
}

func enumField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = proto.String(".inx." + typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

// enumType lists values in ascending number order so the descriptor bytes
// are stable.
func enumType(name string, names map[int32]string, deprecated map[int32]bool) *descriptorpb.EnumDescriptorProto {
	numbers := make([]int32, 0, len(names))
	for n := range names {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for _, n := range numbers {
		v := &descriptorpb.EnumValueDescriptorProto{Name: proto.String(names[n]), Number: proto.Int32(n)}
		if deprecated[n] {
			v.Options = &descriptorpb.EnumValueOptions{Deprecated: proto.Bool(true)}
		}
		e.Value = append(e.Value, v)
	}
	return e
}

func method(name, in, out string, serverStreaming bool) *descriptorpb.MethodDescriptorProto {
	m := &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(".inx." + in),
		OutputType: proto.String(".inx." + out),
	}
	if serverStreaming {
		m.ServerStreaming = proto.Bool(true)
	}
	return m
}
