package cloudstore

import "context"

// CloudWriter buffers an object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

type ObjectReader interface {
	ReadObject(ctx context.Context, bucket, objectPath string) ([]byte, error)
}

// ObjectAPI is the subset of the S3 client used here.
type ObjectAPI interface {
	PutObjectAPI
	GetObjectAPI
}
