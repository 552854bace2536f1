package worldmap

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ink-and-realm/core/storage"
	"ink-and-realm/core/storage/mocks"
	"ink-and-realm/feature/worldmap/models"
)

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestArchive_EnsureBucket(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, storage.Config{Bucket: "inkandrealm"}, zap.NewNop())

	client.On("BucketExists", mock.Anything, "inkandrealm").Return(false, nil).Once()
	client.On("MakeBucket", mock.Anything, "inkandrealm", mock.Anything).Return(nil).Once()

	require.NoError(t, archive.EnsureBucket(context.Background()))
	client.AssertExpectations(t)
}

func TestArchive_EnsureBucketAlreadyExists(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, storage.Config{Bucket: "inkandrealm"}, zap.NewNop())

	client.On("BucketExists", mock.Anything, "inkandrealm").Return(true, nil).Once()

	require.NoError(t, archive.EnsureBucket(context.Background()))
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchive_StoreUploadsAndPrunes(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, storage.Config{Bucket: "inkandrealm", KeepSnapshots: 2}, zap.NewNop())

	client.On("PutObject", mock.Anything, "inkandrealm", mock.MatchedBy(func(name string) bool {
		return len(name) > 0
	}), mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil).Once()

	client.On("ListObjects", mock.Anything, "inkandrealm", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			return objectChannel(
				"maps/7/20240101T000000.000000000.json",
				"maps/7/20240102T000000.000000000.json",
				"maps/7/20240103T000000.000000000.json",
			)
		}).Once()

	// the oldest snapshot falls past the retention count
	client.On("RemoveObject", mock.Anything, "inkandrealm", "maps/7/20240101T000000.000000000.json", mock.Anything).
		Return(nil).Once()

	archive.Store(context.Background(), &models.MapSnapshot{ID: 7, Name: "Test"})
	client.AssertExpectations(t)
}

func TestArchive_StoreFailureIsBestEffort(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, storage.Config{Bucket: "inkandrealm"}, zap.NewNop())

	client.On("PutObject", mock.Anything, "inkandrealm", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError).Once()

	// no panic, no prune attempt
	archive.Store(context.Background(), &models.MapSnapshot{ID: 7})
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchive_VersionsNewestFirst(t *testing.T) {
	client := new(mocks.Client)
	archive := NewArchive(client, storage.Config{Bucket: "inkandrealm"}, zap.NewNop())

	client.On("ListObjects", mock.Anything, "inkandrealm", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			return objectChannel(
				"maps/7/20240101T000000.000000000.json",
				"maps/7/20240103T000000.000000000.json",
				"maps/7/20240102T000000.000000000.json",
			)
		}).Once()

	names, err := archive.Versions(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "maps/7/20240103T000000.000000000.json", names[0])
}
