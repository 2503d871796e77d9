package services

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure for callers that need more than the HTTP
// code: user-input errors, missing records, storage faults, and the two
// archive outcomes.
type ErrorKind string

const (
	KindInvalidFolderName ErrorKind = "invalid_folder_name"
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindStorage           ErrorKind = "storage"
	KindArchiveConflict   ErrorKind = "archive_conflict"
	KindInvalidArchive    ErrorKind = "invalid_archive"
)

type AppError struct {
	Kind     ErrorKind
	HTTPCode int
	Message  string
	Data     interface{}
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newAppError(kind ErrorKind, httpCode int, message string, err error) *AppError {
	return &AppError{Kind: kind, HTTPCode: httpCode, Message: message, Err: err}
}

func newInvalidFolderName(name string) *AppError {
	return newAppError(KindInvalidFolderName, http.StatusBadRequest, fmt.Sprintf("invalid folder name %q", name), nil)
}

func newValidationError(message string) *AppError {
	return newAppError(KindValidation, http.StatusBadRequest, message, nil)
}

func newNotFound(message string) *AppError {
	return newAppError(KindNotFound, http.StatusNotFound, message, nil)
}

// newStorageError wraps an underlying store failure. The wrapped error is
// logged but never rendered to clients, so filesystem paths stay internal.
func newStorageError(message string, err error) *AppError {
	return newAppError(KindStorage, http.StatusInternalServerError, message, err)
}

func newArchiveConflict(message string) *AppError {
	return newAppError(KindArchiveConflict, http.StatusConflict, message, nil)
}

func newInvalidArchive(message string) *AppError {
	return newAppError(KindInvalidArchive, http.StatusBadRequest, message, nil)
}
