package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrItemNotFound  = errors.New("check item not found")
	ErrOwnerNotFound = errors.New("owner of item not found")
	ErrWrongOwner    = errors.New("item belongs to another user")
	ErrItemArchived  = errors.New("check item is archived")
	ErrInvalidOrder  = errors.New("order must list every item of the user exactly once")

	ErrValidation = errors.New("validation error")
	ErrCacheMiss  = errors.New("cache miss")
)
