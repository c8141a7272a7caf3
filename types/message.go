package types

import (
	"github.com/ipfs/go-cid"

	"permanode.io/inx/cidutil"
	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

// Message is a message id paired with its verified message.
type Message struct {
	MessageID stardust.MessageID
	Message   *stardust.Message
}

// NewMessage converts a wire Message. Both message_id and message are
// required.
func NewMessage(w *inx.Message) (Message, error) {
	if err := requireFields(
		required{"message_id", w.GetMessageId() != nil},
		required{"message", w.GetMessage() != nil},
	); err != nil {
		return Message{}, err
	}
	id, err := messageID("message_id", w.GetMessageId())
	if err != nil {
		return Message{}, err
	}
	msg, err := rawMessage("message", w.GetMessage())
	if err != nil {
		return Message{}, err
	}
	return Message{MessageID: id, Message: msg}, nil
}

// Verify checks that MessageID is the id of Message. NewMessage does not do
// this; callers that do not trust the node's ids can.
func (m Message) Verify() error {
	if m.Message == nil {
		return missingField("message")
	}
	if m.Message.ID() != m.MessageID {
		return invalidField("message_id")
	}
	return nil
}

// CID returns the content identifier of the packed message.
func (m Message) CID() (cid.Cid, error) {
	return cidutil.CIDFromMessageID(m.MessageID)
}

// Milestone is a milestone as announced by the node.
type Milestone struct {
	MilestoneIndex     uint32
	MilestoneTimestamp uint32
	MessageID          stardust.MessageID
	MilestoneID        stardust.MilestoneID
}

// NewMilestone converts a wire Milestone. Index and timestamp are copied
// verbatim; message_id and milestone_id are required.
func NewMilestone(w *inx.Milestone) (Milestone, error) {
	if err := requireFields(
		required{"message_id", w.GetMessageId() != nil},
		required{"milestone_id", w.GetMilestoneId() != nil},
	); err != nil {
		return Milestone{}, err
	}
	msgID, err := messageID("message_id", w.GetMessageId())
	if err != nil {
		return Milestone{}, err
	}
	msID, err := milestoneID("milestone_id", w.GetMilestoneId())
	if err != nil {
		return Milestone{}, err
	}
	return Milestone{
		MilestoneIndex:     w.GetMilestoneIndex(),
		MilestoneTimestamp: w.GetMilestoneTimestamp(),
		MessageID:          msgID,
		MilestoneID:        msID,
	}, nil
}
