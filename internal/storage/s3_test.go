package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"ticketee/config"
	"ticketee/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
	headErr error
	created []string
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func (f *fakeS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = append(f.created, aws.ToString(in.Bucket))
	return &s3.CreateBucketOutput{}, nil
}

func testS3Config() *config.S3Config {
	return &config.S3Config{Endpoint: "http://minio:9000/", Bucket: "event-media"}
}

func TestObjectKey(t *testing.T) {
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	assert.Equal(t, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11/0-cover.jpg", ObjectKey(eventID, 0, "cover.jpg"))
	assert.Equal(t, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11/2-my_photo__1_.png", ObjectKey(eventID, 2, "../my photo (1).png"))
	assert.Equal(t, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11/1-file", ObjectKey(eventID, 1, ""))
	assert.Equal(t, "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11/1-x.gif", ObjectKey(eventID, 1, `C:\tmp\x.gif`))
}

func TestS3ObjectStore_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fake := newFakeS3()
		store := NewS3ObjectStore(fake, testS3Config())

		url, err := store.Upload(ctx, "ev/0-a.jpg", model.MediaAsset{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")})

		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/event-media/ev/0-a.jpg", url)
		assert.Equal(t, []byte("jpeg"), fake.objects["ev/0-a.jpg"])
		assert.Equal(t, "image/jpeg", fake.types["ev/0-a.jpg"])
	})

	t.Run("Success - default content type", func(t *testing.T) {
		fake := newFakeS3()
		store := NewS3ObjectStore(fake, testS3Config())

		_, err := store.Upload(ctx, "ev/0-a", model.MediaAsset{Name: "a"})

		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", fake.types["ev/0-a"])
	})

	t.Run("Failed - put error", func(t *testing.T) {
		fake := newFakeS3()
		fake.putErr = errors.New("access denied")
		store := NewS3ObjectStore(fake, testS3Config())

		_, err := store.Upload(ctx, "ev/0-a.jpg", model.MediaAsset{Name: "a.jpg"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}

func TestS3ObjectStore_Delete(t *testing.T) {
	ctx := context.Background()
	cfg := testS3Config()
	cfg.PublicBaseURL = "https://cdn.example.com/media/"
	fake := newFakeS3()
	store := NewS3ObjectStore(fake, cfg)

	require.NoError(t, store.Delete(ctx, "https://cdn.example.com/media/ev/0-a.jpg"))
	assert.Equal(t, []string{"ev/0-a.jpg"}, fake.deleted)

	assert.ErrorIs(t, store.Delete(ctx, "https://elsewhere.example.com/ev/0-a.jpg"), ErrForeignURL)
	assert.ErrorIs(t, store.Delete(ctx, "https://cdn.example.com/media/"), ErrForeignURL)
}

func TestS3ObjectStore_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	fake := newFakeS3()
	require.NoError(t, NewS3ObjectStore(fake, testS3Config()).EnsureBucket(ctx))
	assert.Empty(t, fake.created)

	fake.headErr = errors.New("not found")
	require.NoError(t, NewS3ObjectStore(fake, testS3Config()).EnsureBucket(ctx))
	assert.Equal(t, []string{"event-media"}, fake.created)
}
