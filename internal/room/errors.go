package room

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room full")
	ErrDuplicateName    = errors.New("name already taken")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrRoundNotStarted  = errors.New("round not started")
	ErrVotingNotStarted = errors.New("voting not started")
	ErrWordNotFound     = errors.New("word not found")
)
