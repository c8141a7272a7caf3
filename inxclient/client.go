// Package inxclient reads from an INX node and returns domain records.
//
// Every record received from the node goes through the types assemblers, so
// callers only ever see verified values or a *types.Error.
package inxclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
	"permanode.io/inx/types"
)

// Client is a converting INX client.
type Client struct {
	cc     *grpc.ClientConn
	client inx.INXClient

	// Timeout applies per unary RPC when non-zero. Streams run until their
	// context ends or the node closes them.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout, when non-zero, makes Dial connect eagerly and wait up to
	// Timeout for the connection to become ready.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

// Dial creates a client for target. Without a Timeout the connection is
// established lazily by the first RPC.
func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	cc, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	if opts.Timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
		defer cancel()
		if err := waitReady(ctx, cc); err != nil {
			_ = cc.Close()
			return nil, err
		}
	}
	return New(cc), nil
}

func waitReady(ctx context.Context, cc *grpc.ClientConn) error {
	cc.Connect()
	for {
		state := cc.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !cc.WaitForStateChange(ctx, state) {
			return fmt.Errorf("%w: %s after %v", ErrUnavailable, state, ctx.Err())
		}
	}
}

// New wraps an existing connection. Close closes cc.
func New(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: inx.NewINXClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) NodeStatus(ctx context.Context) (types.NodeStatus, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.ReadNodeStatus(ctx, &inx.NoParams{})
	if err != nil {
		return types.NodeStatus{}, mapRPC(err)
	}
	return types.NewNodeStatus(reply)
}

func (c *Client) NodeConfiguration(ctx context.Context) (types.NodeConfiguration, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.ReadNodeConfiguration(ctx, &inx.NoParams{})
	if err != nil {
		return types.NodeConfiguration{}, mapRPC(err)
	}
	return types.NewNodeConfiguration(reply)
}

// Message reads the message with the given id. The returned bytes must hash
// to id; otherwise ErrIDMismatch is returned.
func (c *Client) Message(ctx context.Context, id stardust.MessageID) (types.Message, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	wireID := &inx.MessageId{Id: id.Bytes()}
	reply, err := c.client.ReadMessage(ctx, wireID)
	if err != nil {
		return types.Message{}, mapRPC(err)
	}
	m, err := types.NewMessage(&inx.Message{MessageId: wireID, Message: reply})
	if err != nil {
		return types.Message{}, err
	}
	if err := m.Verify(); err != nil {
		return types.Message{}, ErrIDMismatch
	}
	return m, nil
}

func (c *Client) MessageMetadata(ctx context.Context, id stardust.MessageID) (types.MessageMetadata, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	reply, err := c.client.ReadMessageMetadata(ctx, &inx.MessageId{Id: id.Bytes()})
	if err != nil {
		return types.MessageMetadata{}, mapRPC(err)
	}
	return types.NewMessageMetadata(reply)
}

// ListenToMessages calls fn for every message the node streams. It returns
// nil when the node ends the stream, and stops at the first error from the
// node, from conversion, or from fn. Returning cancels the stream so the node
// stops sending.
func (c *Client) ListenToMessages(ctx context.Context, fn func(types.Message) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.ListenToMessages(ctx, &inx.NoParams{})
	if err != nil {
		return mapRPC(err)
	}
	return drain(stream, types.NewMessage, fn)
}

func (c *Client) ListenToSolidMessages(ctx context.Context, fn func(types.MessageMetadata) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.ListenToSolidMessages(ctx, &inx.NoParams{})
	if err != nil {
		return mapRPC(err)
	}
	return drain(stream, types.NewMessageMetadata, fn)
}

func (c *Client) ListenToLatestMilestone(ctx context.Context, fn func(types.Milestone) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.ListenToLatestMilestone(ctx, &inx.NoParams{})
	if err != nil {
		return mapRPC(err)
	}
	return drain(stream, types.NewMilestone, fn)
}

func (c *Client) ListenToConfirmedMilestone(ctx context.Context, fn func(types.Milestone) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.client.ListenToConfirmedMilestone(ctx, &inx.NoParams{})
	if err != nil {
		return mapRPC(err)
	}
	return drain(stream, types.NewMilestone, fn)
}

func drain[W any, D any](stream grpc.ServerStreamingClient[W], convert func(*W) (D, error), fn func(D) error) error {
	for {
		w, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return mapRPC(err)
		}
		d, err := convert(w)
		if err != nil {
			return err
		}
		if err := fn(d); err != nil {
			return err
		}
	}
}

func (c *Client) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}
