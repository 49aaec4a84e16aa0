package handler

import "errors"

var (
	errInvalidPostID = errors.New("invalid post ID")
)
