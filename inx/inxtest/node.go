// Package inxtest provides an in-memory INX node for tests.
//
// A Node serves what it has been given: unary reads answer from its maps and
// every Listen stream replays the events recorded so far, then ends.
package inxtest

import (
	"context"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

// Node implements inx.INXServer from in-memory state.
type Node struct {
	inx.UnimplementedINXServer

	mu        sync.Mutex
	status    *inx.NodeStatus
	config    *inx.NodeConfiguration
	raw       map[stardust.MessageID][]byte
	metadata  map[stardust.MessageID]*inx.MessageMetadata
	messages  []*inx.Message
	solid     []*inx.MessageMetadata
	latest    []*inx.Milestone
	confirmed []*inx.Milestone
}

func NewNode() *Node {
	return &Node{
		raw:      map[stardust.MessageID][]byte{},
		metadata: map[stardust.MessageID]*inx.MessageMetadata{},
	}
}

func (n *Node) SetStatus(s *inx.NodeStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = s
}

func (n *Node) SetConfiguration(c *inx.NodeConfiguration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.config = c
}

// AddMessage stores the packed message under its id and records it on the
// message stream.
func (n *Node) AddMessage(m *stardust.Message) stardust.MessageID {
	data := m.Pack()
	id := m.ID()
	n.AddRaw(id, data)
	return id
}

// AddRaw stores data under id as given. Tests use it to serve bytes that do
// not match their id or do not decode.
func (n *Node) AddRaw(id stardust.MessageID, data []byte) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.raw[id] = data
	n.messages = append(n.messages, &inx.Message{
		MessageId: &inx.MessageId{Id: id.Bytes()},
		Message:   &inx.RawMessage{Data: data},
	})
}

// AddMetadata stores md for ReadMessageMetadata and, when solid is set,
// records it on the solid stream.
func (n *Node) AddMetadata(id stardust.MessageID, md *inx.MessageMetadata) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.metadata[id] = md
	if md.GetSolid() {
		n.solid = append(n.solid, md)
	}
}

func (n *Node) AddLatestMilestone(m *inx.Milestone) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest = append(n.latest, m)
}

func (n *Node) AddConfirmedMilestone(m *inx.Milestone) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, m)
}

func (n *Node) ReadNodeStatus(context.Context, *inx.NoParams) (*inx.NodeStatus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.status == nil {
		return nil, status.Error(codes.Unavailable, "node status not set")
	}
	return n.status, nil
}

func (n *Node) ReadNodeConfiguration(context.Context, *inx.NoParams) (*inx.NodeConfiguration, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.config == nil {
		return nil, status.Error(codes.Unavailable, "node configuration not set")
	}
	return n.config, nil
}

func (n *Node) ReadMessage(_ context.Context, in *inx.MessageId) (*inx.RawMessage, error) {
	id, err := stardust.MessageIDFromBytes(in.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	data, ok := n.raw[id]
	if !ok {
		return nil, status.Error(codes.NotFound, "message not found")
	}
	return &inx.RawMessage{Data: data}, nil
}

func (n *Node) ReadMessageMetadata(_ context.Context, in *inx.MessageId) (*inx.MessageMetadata, error) {
	id, err := stardust.MessageIDFromBytes(in.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	md, ok := n.metadata[id]
	if !ok {
		return nil, status.Error(codes.NotFound, "message metadata not found")
	}
	return md, nil
}

func (n *Node) ListenToMessages(_ *inx.NoParams, stream grpc.ServerStreamingServer[inx.Message]) error {
	return replay(stream, snapshot(&n.mu, &n.messages))
}

func (n *Node) ListenToSolidMessages(_ *inx.NoParams, stream grpc.ServerStreamingServer[inx.MessageMetadata]) error {
	return replay(stream, snapshot(&n.mu, &n.solid))
}

func (n *Node) ListenToLatestMilestone(_ *inx.NoParams, stream grpc.ServerStreamingServer[inx.Milestone]) error {
	return replay(stream, snapshot(&n.mu, &n.latest))
}

func (n *Node) ListenToConfirmedMilestone(_ *inx.NoParams, stream grpc.ServerStreamingServer[inx.Milestone]) error {
	return replay(stream, snapshot(&n.mu, &n.confirmed))
}

func snapshot[T any](mu *sync.Mutex, events *[]*T) []*T {
	mu.Lock()
	defer mu.Unlock()
	return append([]*T(nil), (*events)...)
}

func replay[T any](stream grpc.ServerStreamingServer[T], events []*T) error {
	for _, ev := range events {
		if err := stream.Context().Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(ev); err != nil {
			return err
		}
	}
	return nil
}

// Serve starts srv on an in-memory listener and returns a connection to it.
// Both are torn down when the test ends.
func Serve(t testing.TB, srv inx.INXServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	inx.RegisterINXServer(s, srv)

	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }
	cc, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })
	return cc
}
