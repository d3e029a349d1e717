package db

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound signals a missing key or hash field.
var ErrKeyNotFound = errors.New("key not found")

// Op names a storage operation for error context.
type Op string

// Storage operations.
const (
	OpPing    Op = "ping"
	OpHIncrBy Op = "hincrby"
	OpHGet    Op = "hget"
	OpHGetAll Op = "hgetall"
	OpDel     Op = "del"
)

// Error wraps a storage failure with the operation that caused it.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("db %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }
