package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"

	"permanode.io/inx/cidutil"
	"permanode.io/inx/inxclient"
	"permanode.io/inx/stardust"
	"permanode.io/inx/types"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// dial is replaced in tests.
var dial = func(opts options) (*inxclient.Client, error) {
	c, err := inxclient.Dial(opts.Address, inxclient.DialOptions{
		Timeout:     opts.DialTimeout,
		MaxMsgBytes: opts.MaxMsgBytes,
	})
	if err != nil {
		return nil, err
	}
	c.Timeout = opts.Timeout
	return c, nil
}

// interrupted is replaced in tests.
var interrupted = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "status":
		return cmdStatus(args[1:], out, errOut)
	case "config":
		return cmdConfig(args[1:], out, errOut)
	case "message":
		return cmdMessage(args[1:], out, errOut)
	case "metadata":
		return cmdMetadata(args[1:], out, errOut)
	case "listen":
		return cmdListen(args[1:], out, errOut)
	case "decode":
		return cmdDecode(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "inx-convert: read and verify records from an INX node")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  inx-convert status [conn flags]")
	fmt.Fprintln(w, "  inx-convert config [conn flags]")
	fmt.Fprintln(w, "  inx-convert message --id <0xhex> [--verify-milestone] [conn flags]")
	fmt.Fprintln(w, "  inx-convert metadata --id <0xhex> [conn flags]")
	fmt.Fprintln(w, "  inx-convert listen [--count N] [conn flags] messages|solid|latest|confirmed")
	fmt.Fprintln(w, "  inx-convert decode [--hex] <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conn flags:")
	fmt.Fprintln(w, "  --config <file.toml> --inx-address <host:port> --dial-timeout <d> --timeout <d> --max-msg-bytes <n> --log-level <lvl>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - flags override the config file; the config file overrides defaults")
	fmt.Fprintln(w, "  - conversion failures are reported as Kind(field), e.g. MissingField(message_id)")
}

// session is the state shared by every command that talks to a node.
type session struct {
	log    zerolog.Logger
	client *inxclient.Client
}

func openSession(fs *flag.FlagSet, args []string, errOut io.Writer) (*session, int) {
	resolve := connFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, 2
	}
	opts, err := resolve()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return nil, 2
	}
	log, err := newLogger(errOut, opts.LogLevel)
	if err != nil {
		fmt.Fprintf(errOut, "invalid log level %q\n", opts.LogLevel)
		return nil, 2
	}
	log.Debug().Str("address", opts.Address).Dur("timeout", opts.Timeout).Msg("dialing node")
	c, err := dial(opts)
	if err != nil {
		log.Error().Err(err).Str("address", opts.Address).Msg("dial failed")
		return nil, 1
	}
	return &session{log: log, client: c}, 0
}

func (s *session) close() {
	if err := s.client.Close(); err != nil {
		s.log.Debug().Err(err).Msg("close")
	}
}

// fail logs err with its conversion kind and field when it has them.
func (s *session) fail(op string, err error) int {
	ev := s.log.Error().Err(err).Str("op", op)
	var convErr *types.Error
	if errors.As(err, &convErr) {
		ev = ev.Str("kind", string(convErr.Kind)).Str("field", convErr.Field)
	}
	ev.Msg("request failed")
	return 1
}

func cmdStatus(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(errOut)
	s, code := openSession(fs, args, errOut)
	if s == nil {
		return code
	}
	defer s.close()

	st, err := s.client.NodeStatus(context.Background())
	if err != nil {
		return s.fail("status", err)
	}
	fmt.Fprintf(out, "healthy: %t\n", st.IsHealthy)
	printMilestoneInfo(out, "latest", st.LatestMilestone)
	printMilestoneInfo(out, "confirmed", st.ConfirmedMilestone)
	fmt.Fprintf(out, "pruning_index: %d\n", st.PruningIndex)
	fmt.Fprintf(out, "ledger_index: %d\n", st.LedgerIndex)
	return 0
}

func printMilestoneInfo(w io.Writer, label string, m types.MilestoneInfo) {
	id := "-"
	if m.MilestoneID != nil {
		id = m.MilestoneID.String()
	}
	fmt.Fprintf(w, "%s_milestone: index=%d timestamp=%d id=%s\n", label, m.MilestoneIndex, m.MilestoneTimestamp, id)
}

func cmdConfig(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(errOut)
	s, code := openSession(fs, args, errOut)
	if s == nil {
		return code
	}
	defer s.close()

	cfg, err := s.client.NodeConfiguration(context.Background())
	if err != nil {
		return s.fail("config", err)
	}
	p := cfg.ProtocolParameters
	fmt.Fprintf(out, "protocol_version: %d\n", p.Version)
	fmt.Fprintf(out, "network_name: %s\n", p.NetworkName)
	fmt.Fprintf(out, "bech32_hrp: %s\n", p.Bech32HRP)
	fmt.Fprintf(out, "min_pow_score: %d\n", p.MinPoWScore)
	fmt.Fprintf(out, "below_max_depth: %d\n", p.BelowMaxDepth)
	fmt.Fprintf(out, "rent_structure: v_byte_cost=%d v_byte_factor_data=%d v_byte_factor_key=%d\n",
		p.RentStructure.VByteCost, p.RentStructure.VByteFactorData, p.RentStructure.VByteFactorKey)
	fmt.Fprintf(out, "token_supply: %d\n", p.TokenSupply)
	fmt.Fprintf(out, "milestone_public_key_count: %d\n", cfg.MilestonePublicKeyCount)
	for _, r := range cfg.MilestoneKeyRanges {
		fmt.Fprintf(out, "milestone_key_range: key=%x start=%d end=%d\n", []byte(r.PublicKey), r.StartIndex, r.EndIndex)
	}
	t := cfg.BaseToken
	fmt.Fprintf(out, "base_token: name=%s ticker=%s unit=%s subunit=%s decimals=%d metric_prefix=%t\n",
		t.Name, t.TickerSymbol, t.Unit, t.SubUnit, t.Decimals, t.UseMetricPrefix)
	return 0
}

func cmdMessage(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("message", flag.ContinueOnError)
	fs.SetOutput(errOut)
	idHex := fs.String("id", "", "message id (hex)")
	verify := fs.Bool("verify-milestone", false, "check milestone signatures against the node's key ranges")
	s, code := openSession(fs, args, errOut)
	if s == nil {
		return code
	}
	defer s.close()

	id, err := stardust.MessageIDFromHex(*idHex)
	if err != nil {
		fmt.Fprintf(errOut, "--id: %v\n", err)
		return 2
	}
	ctx := context.Background()
	m, err := s.client.Message(ctx, id)
	if err != nil {
		return s.fail("message", err)
	}
	printMessage(out, m)

	if !*verify {
		return 0
	}
	ms, ok := m.Message.Payload.(*stardust.MilestonePayload)
	if !ok {
		s.log.Warn().Str("message_id", id.String()).Msg("not a milestone, nothing to verify")
		return 0
	}
	cfg, err := s.client.NodeConfiguration(ctx)
	if err != nil {
		return s.fail("config", err)
	}
	if err := ms.VerifySignatures(cfg.MilestoneKeyRanges, int(cfg.MilestonePublicKeyCount)); err != nil {
		return s.fail("verify milestone", err)
	}
	fmt.Fprintf(out, "milestone_signatures: valid (%d)\n", len(ms.Signatures))
	return 0
}

func printMessage(w io.Writer, m types.Message) {
	fmt.Fprintf(w, "message_id: %s\n", m.MessageID)
	if c, err := m.CID(); err == nil {
		fmt.Fprintf(w, "cid: %s\n", c)
	}
	fmt.Fprintf(w, "protocol_version: %d\n", m.Message.ProtocolVersion)
	for _, p := range m.Message.Parents {
		fmt.Fprintf(w, "parent: %s\n", p)
	}
	fmt.Fprintf(w, "payload: %s\n", describePayload(m.Message.Payload))
	fmt.Fprintf(w, "nonce: %d\n", m.Message.Nonce)
}

func describePayload(p stardust.Payload) string {
	switch v := p.(type) {
	case nil:
		return "none"
	case *stardust.TaggedData:
		return fmt.Sprintf("tagged_data tag=%q data_len=%d", v.Tag, len(v.Data))
	case *stardust.MilestonePayload:
		return fmt.Sprintf("milestone index=%d id=%s signatures=%d", v.Essence.Index, v.ID(), len(v.Signatures))
	case *stardust.OpaquePayload:
		return fmt.Sprintf("type=%d body_len=%d", v.Type, len(v.Body))
	default:
		return fmt.Sprintf("type=%d", p.PayloadType())
	}
}

func cmdMetadata(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("metadata", flag.ContinueOnError)
	fs.SetOutput(errOut)
	idHex := fs.String("id", "", "message id (hex)")
	s, code := openSession(fs, args, errOut)
	if s == nil {
		return code
	}
	defer s.close()

	id, err := stardust.MessageIDFromHex(*idHex)
	if err != nil {
		fmt.Fprintf(errOut, "--id: %v\n", err)
		return 2
	}
	md, err := s.client.MessageMetadata(context.Background(), id)
	if err != nil {
		return s.fail("metadata", err)
	}
	printMetadata(out, md)
	return 0
}

func printMetadata(w io.Writer, md types.MessageMetadata) {
	parents := make([]string, 0, len(md.Parents))
	for _, p := range md.Parents {
		parents = append(parents, p.String())
	}
	fmt.Fprintf(w, "message_id: %s\n", md.MessageID)
	fmt.Fprintf(w, "parents: %s\n", strings.Join(parents, ","))
	fmt.Fprintf(w, "solid: %t should_promote: %t should_reattach: %t\n", md.IsSolid, md.ShouldPromote, md.ShouldReattach)
	fmt.Fprintf(w, "referenced_by_milestone_index: %d milestone_index: %d\n", md.ReferencedByMilestoneIndex, md.MilestoneIndex)
	fmt.Fprintf(w, "ledger_inclusion_state: %s conflict_reason: %s\n", md.LedgerInclusionState, md.ConflictReason)
}

var errEnough = errors.New("enough events")

func cmdListen(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("listen", flag.ContinueOnError)
	fs.SetOutput(errOut)
	count := fs.Int("count", 0, "stop after N events (0 = until the stream ends)")
	s, code := openSession(fs, args, errOut)
	if s == nil {
		return code
	}
	defer s.close()

	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "listen: expected one of messages|solid|latest|confirmed")
		return 2
	}
	stream := fs.Arg(0)

	ctx, stop := interrupted()
	defer stop()

	seen := 0
	next := func() error {
		seen++
		if *count > 0 && seen >= *count {
			return errEnough
		}
		return nil
	}
	printMilestone := func(m types.Milestone) error {
		fmt.Fprintf(out, "milestone index=%d timestamp=%d message_id=%s milestone_id=%s\n",
			m.MilestoneIndex, m.MilestoneTimestamp, m.MessageID, m.MilestoneID)
		return next()
	}

	var err error
	switch stream {
	case "messages":
		err = s.client.ListenToMessages(ctx, func(m types.Message) error {
			fmt.Fprintf(out, "message %s payload=%s\n", m.MessageID, describePayload(m.Message.Payload))
			return next()
		})
	case "solid":
		err = s.client.ListenToSolidMessages(ctx, func(md types.MessageMetadata) error {
			fmt.Fprintf(out, "solid %s state=%s reason=%s\n", md.MessageID, md.LedgerInclusionState, md.ConflictReason)
			return next()
		})
	case "latest":
		err = s.client.ListenToLatestMilestone(ctx, printMilestone)
	case "confirmed":
		err = s.client.ListenToConfirmedMilestone(ctx, printMilestone)
	default:
		fmt.Fprintf(errOut, "listen: unknown stream %q\n", stream)
		return 2
	}
	switch {
	case err == nil, errors.Is(err, errEnough):
	case ctx.Err() != nil:
		s.log.Info().Str("stream", stream).Int("events", seen).Msg("interrupted")
		return 0
	default:
		return s.fail("listen "+stream, err)
	}
	s.log.Info().Str("stream", stream).Int("events", seen).Msg("stream finished")
	return 0
}

func cmdDecode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	isHex := fs.Bool("hex", false, "file contains hex instead of raw bytes")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "decode: expected <file>")
		return 2
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if *isHex {
		text := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
		data, err = hex.DecodeString(text)
		if err != nil {
			fmt.Fprintf(errOut, "decode: %v\n", err)
			return 1
		}
	}
	msg, err := stardust.UnpackVerified(data)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	c, err := cidutil.MessageCID(data)
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}
	m := types.Message{MessageID: msg.ID(), Message: msg}
	printMessage(out, m)
	if id, err := cidutil.MessageIDFromCID(c); err != nil || id != m.MessageID {
		fmt.Fprintln(errOut, "decode: CID does not carry the message id")
		return 1
	}
	return 0
}
