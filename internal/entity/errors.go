package entity

import "errors"

var (
	ErrBoardNotFound    = errors.New("board not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrBoardIDRequired  = errors.New("board id is required")
	ErrGenerationFailed = errors.New("generation service failed")
)
