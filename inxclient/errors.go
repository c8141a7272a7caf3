package inxclient

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrNotFound    = errors.New("inxclient: not found")
	ErrUnavailable = errors.New("inxclient: node unavailable")
	// ErrIDMismatch: the node returned bytes that do not hash to the
	// requested message id.
	ErrIDMismatch = errors.New("inxclient: message id mismatch")
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable:
		return ErrUnavailable
	default:
		return err
	}
}
