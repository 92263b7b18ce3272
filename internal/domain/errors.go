package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument       = errors.New("document yielded no text")
	ErrUnknownPort         = errors.New("unknown port")
	ErrUnknownStage        = errors.New("unknown voyage stage")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrLLMUnavailable      = errors.New("no language model provider configured")
	ErrRateLimited         = errors.New("rate limit exceeded")
)
