package cloudstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func TestS3Writer_UploadsOnClose(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	store := NewS3StoreWithClient(fake)

	w, err := store.NewWriter("campus", "exports/run.jsonl")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	w.Write([]byte("line one\n"))
	w.Write([]byte("line two\n"))

	if len(fake.objects) != 0 {
		t.Fatal("expected nothing uploaded before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := store.ReadObject(context.Background(), "campus", "exports/run.jsonl")
	if err != nil {
		t.Fatalf("ReadObject: %v", err)
	}
	if string(got) != "line one\nline two\n" {
		t.Errorf("unexpected object body %q", got)
	}
}

func TestS3Store_ReadMissingObject(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{objects: map[string][]byte{}})
	if _, err := store.ReadObject(context.Background(), "campus", "missing.json"); err == nil {
		t.Fatal("expected error for missing object")
	}
}

func TestS3Store_WriterRequiresBucket(t *testing.T) {
	store := NewS3StoreWithClient(&fakeS3{objects: map[string][]byte{}})
	if _, err := store.NewWriter("", "key"); err == nil {
		t.Fatal("expected error without bucket")
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"runs/2026/confirmations.parquet": "application/vnd.apache.parquet",
		"catalog.json":                    "application/json",
		"confirmations.jsonl":             "application/x-ndjson",
	}
	for key, want := range tests {
		if got := contentType(key); got != want {
			t.Errorf("contentType(%q) = %q, want %q", key, got, want)
		}
	}
}
