package domain

import "errors"

var (
	ErrNoFiles                 = errors.New("no files uploaded")
	ErrTooManyFiles            = errors.New("too many files in batch")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrEmptyText               = errors.New("no text content extracted")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
