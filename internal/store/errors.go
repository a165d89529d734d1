package store

import (
	"go.uber.org/zap"

	"taskctl/internal/gateway"
)

// Fallback messages used when the backend gives no message.
const (
	msgLogin        = "login failed"
	msgSignup       = "signup failed"
	msgFetchAll     = "failed to load tasks"
	msgFetchByID    = "failed to load task"
	msgCreate       = "failed to create task"
	msgUpdate       = "failed to update task"
	msgUpdateStatus = "failed to update status"
	msgDelete       = "failed to delete task"
)

// RejectedError is returned by a thunk whose operation failed.
// The same Message is recorded in state.
type RejectedError struct {
	Op      Op
	Message string
	Err     error
}

func (e *RejectedError) Error() string {
	return e.Message
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// reject records the failure of op in state and returns it as an error.
func (s *Store) reject(op Op, seq uint64, err error, fallback string) error {
	msg := gateway.Message(err, fallback)
	s.logger.Debug("operation rejected", zap.String("op", string(op)), zap.Error(err))
	s.Dispatch(Rejected{Op: op, Seq: seq, Message: msg})
	return &RejectedError{Op: op, Message: msg, Err: err}
}
