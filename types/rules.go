package types

import (
	"permanode.io/inx/inx"
	"permanode.io/inx/stardust"
)

// required names a field the domain model cannot do without.
type required struct {
	field   string
	present bool
}

// requireFields reports the first absent field in declared order.
func requireFields(fields ...required) error {
	for _, f := range fields {
		if !f.present {
			return missingField(f.field)
		}
	}
	return nil
}

func messageID(field string, w *inx.MessageId) (stardust.MessageID, error) {
	id, err := stardust.MessageIDFromBytes(w.GetId())
	if err != nil {
		return stardust.MessageID{}, invalidBufferLength(field, err)
	}
	return id, nil
}

func milestoneID(field string, w *inx.MilestoneId) (stardust.MilestoneID, error) {
	id, err := stardust.MilestoneIDFromBytes(w.GetId())
	if err != nil {
		return stardust.MilestoneID{}, invalidBufferLength(field, err)
	}
	return id, nil
}

// messageIDs decodes ids element-wise in input order. The first bad element
// fails the whole list.
func messageIDs(field string, ws []*inx.MessageId) ([]stardust.MessageID, error) {
	out := make([]stardust.MessageID, 0, len(ws))
	for _, w := range ws {
		id, err := messageID(field, w)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// rawMessage decodes and verifies a packed message as one step.
func rawMessage(field string, w *inx.RawMessage) (*stardust.Message, error) {
	msg, err := stardust.UnpackVerified(w.GetData())
	if err != nil {
		return nil, packableError(field, err)
	}
	return msg, nil
}
