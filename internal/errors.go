package internal

import (
	"errors"
	"fmt"
	"io/fs"
)

// StorageError represents errors accessing storage files
type StorageError struct {
	Path string
	Op   string // "open", "read"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStoreNotFound reports a store or storage directory that does not exist.
// Callers treat this as non-fatal: the affected step contributes an empty result.
func NewStoreNotFound(path string) *StorageError {
	return &StorageError{Path: path, Op: "open", Err: fs.ErrNotExist}
}

// IsStoreNotFound reports whether err is a missing-store condition.
func IsStoreNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && errors.Is(se.Err, fs.ErrNotExist)
}

// ParseError represents errors parsing stored data
type ParseError struct {
	Source string // "globalStorage", "workspace.json", "recentlyOpenedPathsList"
	Key    string // storage key or file path
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
