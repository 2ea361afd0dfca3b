package export

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// mockS3 records the last PutObject call
type mockS3 struct {
	s3iface.S3API
	input       *s3.PutObjectInput
	body        []byte
	hasDeadline bool
	err         error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	m.input = input
	_, m.hasDeadline = ctx.Deadline()
	if input.Body != nil {
		m.body, _ = io.ReadAll(input.Body)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &mockS3{}
	uploader := NewS3UploaderWithClient(client, "renders", time.Second, nil)

	data := []byte("P3\n1 1\n255\n0 0 0\n")
	if err := uploader.Upload(context.Background(), "default/render.ppm", data, ContentType("ppm")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if aws.StringValue(client.input.Bucket) != "renders" {
		t.Errorf("Expected bucket renders, got %s", aws.StringValue(client.input.Bucket))
	}
	if aws.StringValue(client.input.Key) != "default/render.ppm" {
		t.Errorf("Unexpected key %s", aws.StringValue(client.input.Key))
	}
	if aws.StringValue(client.input.ContentType) != "image/x-portable-pixmap" {
		t.Errorf("Unexpected content type %s", aws.StringValue(client.input.ContentType))
	}
	if aws.Int64Value(client.input.ContentLength) != int64(len(data)) || string(client.body) != string(data) {
		t.Errorf("Unexpected body %q", client.body)
	}
	if !client.hasDeadline {
		t.Error("Expected the upload context to carry a timeout")
	}
}

func TestS3Uploader_UploadError(t *testing.T) {
	client := &mockS3{err: errors.New("access denied")}
	uploader := NewS3UploaderWithClient(client, "renders", 0, nil)

	err := uploader.Upload(context.Background(), "key.png", []byte{1}, "image/png")
	if err == nil || !errors.Is(err, client.err) {
		t.Errorf("Expected wrapped client error, got %v", err)
	}
	if uploader.timeout != DefaultUploadTimeout {
		t.Errorf("Expected default timeout, got %v", uploader.timeout)
	}
}

func TestNewS3Uploader(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{}, nil); err == nil {
		t.Error("Expected an error without a bucket")
	}

	uploader, err := NewS3Uploader(S3Config{
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "renders",
	}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if uploader.bucket != "renders" {
		t.Errorf("Expected bucket renders, got %s", uploader.bucket)
	}
}
