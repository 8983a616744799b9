package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrOwnerNotFound = errors.New("owner of the record doesn't exist")
	ErrWrongOwner    = errors.New("record belongs to a different user")

	ErrWorkoutNotFound    = errors.New("workout doesn't exist")
	ErrDateNotAllowed     = errors.New("date in the future is not allowed")
	ErrGoalNotFound       = errors.New("goal doesn't exist")
	ErrInvalidGoalStatus  = errors.New("unknown goal status")
	ErrMetricNotFound     = errors.New("progress metric doesn't exist")
	ErrChatUnavailable    = errors.New("chat assistant is not configured")
	ErrUnknownTool        = errors.New("model requested an unknown tool")
)
