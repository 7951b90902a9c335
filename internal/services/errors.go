package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNoFriend      = errors.New("no friend")
	ErrNoFriendTasks = errors.New("no tasks found")

	ErrSelfRequest          = errors.New("cannot send request to yourself")
	ErrAlreadyFriends       = errors.New("already friends")
	ErrRequestAlreadySent   = errors.New("request already sent")
	ErrRecipientUnavailable = errors.New("user already has a friend")
	ErrFriendSlotTaken      = errors.New("one of the users already has a friend")
)
