package rbtree

import "errors"

var ErrEndCursor = errors.New("rbtree: dereferencing end cursor")
