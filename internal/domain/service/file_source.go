package service

import "context"

// SourceFile is a document read from a file source.
type SourceFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// FileSource reads documents to translate from a bucket URL or local path.
type FileSource interface {
	Open(ctx context.Context, location string) (*SourceFile, error)
}
