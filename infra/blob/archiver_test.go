package blob

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	bucket, key string
	body        []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.bucket, f.key = aws.ToString(in.Bucket), aws.ToString(in.Key)
	b, err := io.ReadAll(in.Body)
	f.body = b
	return &s3.PutObjectOutput{}, err
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (f *fakeS3) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (f *fakeS3) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("unexpected multipart upload")
}

func (f *fakeS3) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

func TestArchiveUploadsUnderPrefix(t *testing.T) {
	local := filepath.Join(t.TempDir(), "snapshot-00000000000000000042.snap")
	if err := os.WriteFile(local, []byte("state"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeS3{}
	a := newArchiver(fake, "bookie", "snapshots/")
	key, err := a.Archive(context.Background(), local)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if key != "snapshots/snapshot-00000000000000000042.snap" || fake.key != key || fake.bucket != "bookie" {
		t.Fatalf("uploaded %s/%s, returned %s", fake.bucket, fake.key, key)
	}
	if string(fake.body) != "state" {
		t.Fatalf("body = %q", fake.body)
	}
}

func TestArchiveMissingFile(t *testing.T) {
	a := newArchiver(&fakeS3{}, "bookie", "")
	if _, err := a.Archive(context.Background(), "/does/not/exist"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNormaliseEndpoint(t *testing.T) {
	if got := normaliseEndpoint("minio:9000"); got != "https://minio:9000" {
		t.Fatalf("got %s", got)
	}
	if got := normaliseEndpoint("http://minio:9000"); got != "http://minio:9000" {
		t.Fatalf("got %s", got)
	}
}
