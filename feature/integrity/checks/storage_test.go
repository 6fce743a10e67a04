package checks

import (
	"context"
	"errors"
	"testing"

	"prompt-library/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "library").Return(false, nil)

		report, err := CheckStorage(context.Background(), mockClient, "library", "backups/")
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Counts Snapshots", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "library").Return(true, nil)
		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "backups/prompt_database_20240101_000000.json"}
		ch <- minio.ObjectInfo{Key: "backups/prompt_database_20240102_000000.json"}
		ch <- minio.ObjectInfo{Key: "backups/notes.txt"}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "library", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		report, err := CheckStorage(context.Background(), mockClient, "library", "backups/")
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.Equal(t, 2, report.Snapshots)
		assert.Equal(t, 1, report.Foreign)
	})

	t.Run("Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "library").Return(false, errors.New("refused"))

		_, err := CheckStorage(context.Background(), mockClient, "library", "backups/")
		assert.ErrorContains(t, err, "refused")
	})
}

func TestFixStorage(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "library").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "library", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	require.NoError(t, FixStorage(context.Background(), mockClient, "library", "eu-west-1"))
	mockClient.AssertExpectations(t)
}
