package inx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

const serviceName = "inx.INX"

const (
	ReadNodeStatusFullMethodName             = "/inx.INX/ReadNodeStatus"
	ReadNodeConfigurationFullMethodName      = "/inx.INX/ReadNodeConfiguration"
	ReadMessageFullMethodName                = "/inx.INX/ReadMessage"
	ReadMessageMetadataFullMethodName        = "/inx.INX/ReadMessageMetadata"
	ListenToMessagesFullMethodName           = "/inx.INX/ListenToMessages"
	ListenToSolidMessagesFullMethodName      = "/inx.INX/ListenToSolidMessages"
	ListenToLatestMilestoneFullMethodName    = "/inx.INX/ListenToLatestMilestone"
	ListenToConfirmedMilestoneFullMethodName = "/inx.INX/ListenToConfirmedMilestone"
)

// INXServer is the server API for the INX service.
type INXServer interface {
	ReadNodeStatus(context.Context, *NoParams) (*NodeStatus, error)
	ReadNodeConfiguration(context.Context, *NoParams) (*NodeConfiguration, error)
	ReadMessage(context.Context, *MessageId) (*RawMessage, error)
	ReadMessageMetadata(context.Context, *MessageId) (*MessageMetadata, error)
	ListenToMessages(*NoParams, grpc.ServerStreamingServer[Message]) error
	ListenToSolidMessages(*NoParams, grpc.ServerStreamingServer[MessageMetadata]) error
	ListenToLatestMilestone(*NoParams, grpc.ServerStreamingServer[Milestone]) error
	ListenToConfirmedMilestone(*NoParams, grpc.ServerStreamingServer[Milestone]) error
}

// UnimplementedINXServer can be embedded to have forward compatible implementations.
type UnimplementedINXServer struct{}

func (UnimplementedINXServer) ReadNodeStatus(context.Context, *NoParams) (*NodeStatus, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadNodeStatus not implemented")
}
func (UnimplementedINXServer) ReadNodeConfiguration(context.Context, *NoParams) (*NodeConfiguration, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadNodeConfiguration not implemented")
}
func (UnimplementedINXServer) ReadMessage(context.Context, *MessageId) (*RawMessage, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadMessage not implemented")
}
func (UnimplementedINXServer) ReadMessageMetadata(context.Context, *MessageId) (*MessageMetadata, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadMessageMetadata not implemented")
}
func (UnimplementedINXServer) ListenToMessages(*NoParams, grpc.ServerStreamingServer[Message]) error {
	return status.Error(codes.Unimplemented, "method ListenToMessages not implemented")
}
func (UnimplementedINXServer) ListenToSolidMessages(*NoParams, grpc.ServerStreamingServer[MessageMetadata]) error {
	return status.Error(codes.Unimplemented, "method ListenToSolidMessages not implemented")
}
func (UnimplementedINXServer) ListenToLatestMilestone(*NoParams, grpc.ServerStreamingServer[Milestone]) error {
	return status.Error(codes.Unimplemented, "method ListenToLatestMilestone not implemented")
}
func (UnimplementedINXServer) ListenToConfirmedMilestone(*NoParams, grpc.ServerStreamingServer[Milestone]) error {
	return status.Error(codes.Unimplemented, "method ListenToConfirmedMilestone not implemented")
}

// RegisterINXServer registers the INX service on a gRPC server.
func RegisterINXServer(s grpc.ServiceRegistrar, srv INXServer) {
	s.RegisterService(&INX_ServiceDesc, srv)
}

// INXClient is the client API for the INX service.
type INXClient interface {
	ReadNodeStatus(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (*NodeStatus, error)
	ReadNodeConfiguration(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (*NodeConfiguration, error)
	ReadMessage(ctx context.Context, in *MessageId, opts ...grpc.CallOption) (*RawMessage, error)
	ReadMessageMetadata(ctx context.Context, in *MessageId, opts ...grpc.CallOption) (*MessageMetadata, error)
	ListenToMessages(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Message], error)
	ListenToSolidMessages(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MessageMetadata], error)
	ListenToLatestMilestone(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Milestone], error)
	ListenToConfirmedMilestone(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Milestone], error)
}

type inxClient struct{ cc grpc.ClientConnInterface }

// NewINXClient returns a client for the INX service on cc.
func NewINXClient(cc grpc.ClientConnInterface) INXClient { return &inxClient{cc: cc} }

func invoke[Res any](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, opts []grpc.CallOption) (*Res, error) {
	out := new(Res)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func listen[Res any](ctx context.Context, cc grpc.ClientConnInterface, desc *grpc.StreamDesc, method string, in *NoParams, opts []grpc.CallOption) (grpc.ServerStreamingClient[Res], error) {
	stream, err := cc.NewStream(ctx, desc, method, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[NoParams, Res]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *inxClient) ReadNodeStatus(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (*NodeStatus, error) {
	return invoke[NodeStatus](ctx, c.cc, ReadNodeStatusFullMethodName, in, opts)
}

func (c *inxClient) ReadNodeConfiguration(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (*NodeConfiguration, error) {
	return invoke[NodeConfiguration](ctx, c.cc, ReadNodeConfigurationFullMethodName, in, opts)
}

func (c *inxClient) ReadMessage(ctx context.Context, in *MessageId, opts ...grpc.CallOption) (*RawMessage, error) {
	return invoke[RawMessage](ctx, c.cc, ReadMessageFullMethodName, in, opts)
}

func (c *inxClient) ReadMessageMetadata(ctx context.Context, in *MessageId, opts ...grpc.CallOption) (*MessageMetadata, error) {
	return invoke[MessageMetadata](ctx, c.cc, ReadMessageMetadataFullMethodName, in, opts)
}

func (c *inxClient) ListenToMessages(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Message], error) {
	return listen[Message](ctx, c.cc, &INX_ServiceDesc.Streams[0], ListenToMessagesFullMethodName, in, opts)
}

func (c *inxClient) ListenToSolidMessages(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MessageMetadata], error) {
	return listen[MessageMetadata](ctx, c.cc, &INX_ServiceDesc.Streams[1], ListenToSolidMessagesFullMethodName, in, opts)
}

func (c *inxClient) ListenToLatestMilestone(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Milestone], error) {
	return listen[Milestone](ctx, c.cc, &INX_ServiceDesc.Streams[2], ListenToLatestMilestoneFullMethodName, in, opts)
}

func (c *inxClient) ListenToConfirmedMilestone(ctx context.Context, in *NoParams, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Milestone], error) {
	return listen[Milestone](ctx, c.cc, &INX_ServiceDesc.Streams[3], ListenToConfirmedMilestoneFullMethodName, in, opts)
}

// methodHandler has the shape grpc.MethodDesc.Handler expects.
type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unaryHandler[Req any, Res any](method string, call func(INXServer, context.Context, *Req) (*Res, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(INXServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(INXServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func streamHandler[Res any](call func(INXServer, *NoParams, grpc.ServerStreamingServer[Res]) error) grpc.StreamHandler {
	return func(srv any, stream grpc.ServerStream) error {
		in := new(NoParams)
		if err := stream.RecvMsg(in); err != nil {
			return err
		}
		return call(srv.(INXServer), in, &grpc.GenericServerStream[NoParams, Res]{ServerStream: stream})
	}
}

// INX_ServiceDesc is the grpc.ServiceDesc for the INX service.
var INX_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*INXServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ReadNodeStatus", Handler: unaryHandler(ReadNodeStatusFullMethodName, INXServer.ReadNodeStatus)},
		{MethodName: "ReadNodeConfiguration", Handler: unaryHandler(ReadNodeConfigurationFullMethodName, INXServer.ReadNodeConfiguration)},
		{MethodName: "ReadMessage", Handler: unaryHandler(ReadMessageFullMethodName, INXServer.ReadMessage)},
		{MethodName: "ReadMessageMetadata", Handler: unaryHandler(ReadMessageMetadataFullMethodName, INXServer.ReadMessageMetadata)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListenToMessages", Handler: streamHandler(INXServer.ListenToMessages), ServerStreams: true},
		{StreamName: "ListenToSolidMessages", Handler: streamHandler(INXServer.ListenToSolidMessages), ServerStreams: true},
		{StreamName: "ListenToLatestMilestone", Handler: streamHandler(INXServer.ListenToLatestMilestone), ServerStreams: true},
		{StreamName: "ListenToConfirmedMilestone", Handler: streamHandler(INXServer.ListenToConfirmedMilestone), ServerStreams: true},
	},
	Metadata: "inx.proto",
}
