package inxclient

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"

	"permanode.io/inx/inx"
	"permanode.io/inx/inx/inxtest"
	"permanode.io/inx/stardust"
	"permanode.io/inx/types"
)

func newTestClient(t *testing.T, node *inxtest.Node) *Client {
	t.Helper()
	c := New(inxtest.Serve(t, node))
	c.Timeout = 2 * time.Second
	return c
}

func testMessage(nonce uint64) *stardust.Message {
	var parent stardust.MessageID
	parent[0] = 0x01
	return &stardust.Message{
		ProtocolVersion: 2,
		Parents:         []stardust.MessageID{parent},
		Payload:         &stardust.TaggedData{Tag: []byte("inx"), Data: []byte("hello")},
		Nonce:           nonce,
	}
}

func TestClient_NodeStatusAndConfiguration(t *testing.T) {
	node := inxtest.NewNode()
	node.SetStatus(&inx.NodeStatus{
		IsHealthy:          true,
		LatestMilestone:    &inx.MilestoneInfo{MilestoneIndex: 5},
		ConfirmedMilestone: &inx.MilestoneInfo{MilestoneIndex: 4},
		LedgerIndex:        4,
	})
	node.SetConfiguration(&inx.NodeConfiguration{
		ProtocolParameters: &inx.ProtocolParameters{
			Version:       2,
			NetworkName:   "testnet",
			RentStructure: &inx.RentStructure{VByteCost: 500, VByteFactorData: 1, VByteFactorKey: 10},
		},
		MilestoneKeyRanges: []*inx.MilestoneKeyRange{{PublicKey: bytes.Repeat([]byte{1}, 32)}},
		BaseToken:          &inx.BaseToken{Name: "Shimmer"},
	})
	c := newTestClient(t, node)
	ctx := context.Background()

	st, err := c.NodeStatus(ctx)
	if err != nil {
		t.Fatalf("NodeStatus: %v", err)
	}
	if !st.IsHealthy || st.LatestMilestone.MilestoneIndex != 5 || st.ConfirmedMilestone.MilestoneIndex != 4 {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.LatestMilestone.MilestoneID != nil {
		t.Fatalf("expected no milestone id")
	}

	cfg, err := c.NodeConfiguration(ctx)
	if err != nil {
		t.Fatalf("NodeConfiguration: %v", err)
	}
	if cfg.ProtocolParameters.NetworkName != "testnet" || cfg.BaseToken.Name != "Shimmer" || len(cfg.MilestoneKeyRanges) != 1 {
		t.Fatalf("unexpected configuration %+v", cfg)
	}
}

func TestClient_MissingFieldOverTheWire(t *testing.T) {
	node := inxtest.NewNode()
	// An empty sub-message is present; an unset one is absent.
	node.SetStatus(&inx.NodeStatus{LatestMilestone: &inx.MilestoneInfo{}})
	c := newTestClient(t, node)

	_, err := c.NodeStatus(context.Background())
	if !types.IsKind(err, types.KindMissingField) || types.FieldName(err) != "confirmed_milestone" {
		t.Fatalf("expected MissingField(confirmed_milestone), got %v", err)
	}
}

func TestClient_Unavailable(t *testing.T) {
	c := newTestClient(t, inxtest.NewNode())
	if _, err := c.NodeStatus(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_MessageAndMetadata(t *testing.T) {
	node := inxtest.NewNode()
	id := node.AddMessage(testMessage(1))
	node.AddMetadata(id, &inx.MessageMetadata{
		MessageId:            &inx.MessageId{Id: id.Bytes()},
		Parents:              []*inx.MessageId{{Id: bytes.Repeat([]byte{1}, 32)}},
		Solid:                true,
		LedgerInclusionState: inx.LedgerInclusionStateNoTransaction,
		ConflictReason:       inx.ConflictReasonInvalidNetworkId,
	})
	c := newTestClient(t, node)
	ctx := context.Background()

	m, err := c.Message(ctx, id)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if m.MessageID != id || m.Message.Nonce != 1 {
		t.Fatalf("unexpected message %+v", m)
	}

	md, err := c.MessageMetadata(ctx, id)
	if err != nil {
		t.Fatalf("MessageMetadata: %v", err)
	}
	if md.MessageID != id || !md.IsSolid || md.ConflictReason != stardust.ConflictReasonSemanticValidationFailed {
		t.Fatalf("unexpected metadata %+v", md)
	}

	var missing stardust.MessageID
	if _, err := c.Message(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.MessageMetadata(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_MessageIDMismatch(t *testing.T) {
	node := inxtest.NewNode()
	var wrong stardust.MessageID
	wrong[0] = 0xEE
	node.AddRaw(wrong, testMessage(2).Pack())
	c := newTestClient(t, node)

	if _, err := c.Message(context.Background(), wrong); !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
}

func TestClient_MalformedMessage(t *testing.T) {
	node := inxtest.NewNode()
	var id stardust.MessageID
	id[0] = 0x07
	node.AddRaw(id, []byte{2, 0})
	c := newTestClient(t, node)

	_, err := c.Message(context.Background(), id)
	if !types.IsKind(err, types.KindPackable) {
		t.Fatalf("expected PackableError, got %v", err)
	}
}

func TestClient_ListenToMessages(t *testing.T) {
	node := inxtest.NewNode()
	want := []stardust.MessageID{
		node.AddMessage(testMessage(1)),
		node.AddMessage(testMessage(2)),
		node.AddMessage(testMessage(3)),
	}
	c := newTestClient(t, node)

	var got []stardust.MessageID
	err := c.ListenToMessages(context.Background(), func(m types.Message) error {
		got = append(got, m.MessageID)
		return nil
	})
	if err != nil {
		t.Fatalf("ListenToMessages: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d messages want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestClient_ListenStopsOnCallbackError(t *testing.T) {
	node := inxtest.NewNode()
	node.AddMessage(testMessage(1))
	node.AddMessage(testMessage(2))
	c := newTestClient(t, node)

	stop := errors.New("stop")
	calls := 0
	err := c.ListenToMessages(context.Background(), func(types.Message) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("expected to stop after one call, got %d calls and %v", calls, err)
	}
}

func TestClient_ListenToSolidMessagesConversionError(t *testing.T) {
	node := inxtest.NewNode()
	var id stardust.MessageID
	node.AddMetadata(id, &inx.MessageMetadata{Solid: true})
	c := newTestClient(t, node)

	err := c.ListenToSolidMessages(context.Background(), func(types.MessageMetadata) error { return nil })
	if !types.IsKind(err, types.KindMissingField) || types.FieldName(err) != "message_id" {
		t.Fatalf("expected MissingField(message_id), got %v", err)
	}
}

func TestClient_ListenToMilestones(t *testing.T) {
	node := inxtest.NewNode()
	ms := func(index uint32) *inx.Milestone {
		return &inx.Milestone{
			MilestoneIndex: index,
			MessageId:      &inx.MessageId{Id: bytes.Repeat([]byte{byte(index)}, 32)},
			MilestoneId:    &inx.MilestoneId{Id: bytes.Repeat([]byte{byte(index)}, 32)},
		}
	}
	node.AddLatestMilestone(ms(10))
	node.AddLatestMilestone(ms(11))
	node.AddConfirmedMilestone(ms(9))
	c := newTestClient(t, node)
	ctx := context.Background()

	var latest []uint32
	if err := c.ListenToLatestMilestone(ctx, func(m types.Milestone) error {
		latest = append(latest, m.MilestoneIndex)
		return nil
	}); err != nil {
		t.Fatalf("ListenToLatestMilestone: %v", err)
	}
	if len(latest) != 2 || latest[0] != 10 || latest[1] != 11 {
		t.Fatalf("unexpected latest milestones %v", latest)
	}

	var confirmed []types.Milestone
	if err := c.ListenToConfirmedMilestone(ctx, func(m types.Milestone) error {
		confirmed = append(confirmed, m)
		return nil
	}); err != nil {
		t.Fatalf("ListenToConfirmedMilestone: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].MilestoneIndex != 9 || confirmed[0].MilestoneID[0] != 9 {
		t.Fatalf("unexpected confirmed milestones %+v", confirmed)
	}
}

// heldMilestoneServer sends one milestone and then keeps the stream open
// until the client goes away.
type heldMilestoneServer struct {
	inx.UnimplementedINXServer
	closed chan struct{}
}

func (s *heldMilestoneServer) ListenToLatestMilestone(_ *inx.NoParams, stream grpc.ServerStreamingServer[inx.Milestone]) error {
	err := stream.Send(&inx.Milestone{
		MilestoneIndex: 1,
		MessageId:      &inx.MessageId{Id: bytes.Repeat([]byte{1}, 32)},
		MilestoneId:    &inx.MilestoneId{Id: bytes.Repeat([]byte{1}, 32)},
	})
	if err != nil {
		return err
	}
	<-stream.Context().Done()
	close(s.closed)
	return stream.Context().Err()
}

func TestClient_ListenCancelsStreamOnReturn(t *testing.T) {
	srv := &heldMilestoneServer{closed: make(chan struct{})}
	c := New(inxtest.Serve(t, srv))

	stop := errors.New("stop")
	err := c.ListenToLatestMilestone(context.Background(), func(types.Milestone) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}
	select {
	case <-srv.closed:
	case <-time.After(2 * time.Second):
		t.Fatalf("server stream still open after the listener returned")
	}
}

func TestDial_WaitsForReadyConnection(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	node := inxtest.NewNode()
	node.SetStatus(&inx.NodeStatus{
		LatestMilestone:    &inx.MilestoneInfo{MilestoneIndex: 2},
		ConfirmedMilestone: &inx.MilestoneInfo{MilestoneIndex: 1},
	})
	s := grpc.NewServer()
	inx.RegisterINXServer(s, node)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	c, err := Dial(lis.Addr().String(), DialOptions{Timeout: 2 * time.Second, MaxMsgBytes: 1 << 20})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()
	st, err := c.NodeStatus(context.Background())
	if err != nil {
		t.Fatalf("NodeStatus: %v", err)
	}
	if st.LatestMilestone.MilestoneIndex != 2 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestDial_TimesOutWithoutNode(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := lis.Addr().String()
	_ = lis.Close()

	if _, err := Dial(addr, DialOptions{Timeout: 200 * time.Millisecond}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
