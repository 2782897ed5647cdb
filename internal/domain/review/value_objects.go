package review

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

const maxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(s) > maxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: s}, nil
}

func (c Comment) Value() string {
	return c.value
}
