package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	putErr      error
	listPages   []*s3.ListObjectsV2Output
	listErr     error
	deletedKeys []string
	deleteErr   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	page := f.listPages[0]
	f.listPages = f.listPages[1:]
	return page, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestPut(t *testing.T) {
	fake := &fakeS3{}
	store := NewWithClient(fake, "maplepath-receipts", "ca-central-1")

	url, err := store.Put(context.Background(), "1/1700000000000.jpg", []byte("bytes"), "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "https://maplepath-receipts.s3.ca-central-1.amazonaws.com/1/1700000000000.jpg", url)

	assert.Equal(t, "maplepath-receipts", *fake.putInput.Bucket)
	assert.Equal(t, "1/1700000000000.jpg", *fake.putInput.Key)
	assert.Equal(t, "image/jpeg", *fake.putInput.ContentType)
	body, err := io.ReadAll(fake.putInput.Body)
	assert.NoError(t, err)
	assert.Equal(t, []byte("bytes"), body)
}

func TestPutError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("access denied")}
	store := NewWithClient(fake, "maplepath-receipts", "ca-central-1")

	_, err := store.Put(context.Background(), "1/1.jpg", []byte("bytes"), "image/jpeg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "can't put object")
}

func TestListOlderThan(t *testing.T) {
	cutoff := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	old := cutoff.Add(-time.Hour)
	fresh := cutoff.Add(time.Hour)

	fake := &fakeS3{
		listPages: []*s3.ListObjectsV2Output{
			{
				Contents: []types.Object{
					{Key: aws.String("1/1.jpg"), LastModified: &old},
					{Key: aws.String("1/2.jpg"), LastModified: &fresh},
				},
				IsTruncated:           aws.Bool(true),
				NextContinuationToken: aws.String("next"),
			},
			{
				Contents: []types.Object{
					{Key: aws.String("2/3.jpg"), LastModified: &old},
				},
				IsTruncated: aws.Bool(false),
			},
		},
	}
	store := NewWithClient(fake, "maplepath-receipts", "ca-central-1")

	keys, err := store.ListOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1/1.jpg", "2/3.jpg"}, keys)
}

func TestDelete(t *testing.T) {
	fake := &fakeS3{}
	store := NewWithClient(fake, "maplepath-receipts", "ca-central-1")

	assert.NoError(t, store.Delete(context.Background(), "1/1.jpg"))
	assert.Equal(t, []string{"1/1.jpg"}, fake.deletedKeys)

	fake.deleteErr = errors.New("gone")
	assert.Error(t, store.Delete(context.Background(), "1/2.jpg"))
}
