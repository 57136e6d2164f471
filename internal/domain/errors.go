package domain

import "errors"

var (
	ErrDuplicateParticipant = errors.New("participant id already in room")
	ErrUnknownParticipant   = errors.New("participant not in room")
	ErrInvalidPayload       = errors.New("invalid command payload")
	ErrPersistenceFailure   = errors.New("recording persistence failed")
)
