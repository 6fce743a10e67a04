package storage_test

import (
	"context"
	"errors"
	"testing"

	"prompt-library/core/storage"
	"prompt-library/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{
			name: "ValidConfig",
			cfg:  storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "b", Region: "us-east-1"},
		},
		{
			name: "EndpointWithHTTP",
			cfg:  storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"},
		},
		{
			name: "EndpointWithHTTPS",
			cfg:  storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lib").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "lib", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lib").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "lib", minio.MakeBucketOptions{Region: "eu"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "lib", "eu"))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "lib").Return(false, errors.New("denied"))

		assert.ErrorContains(t, storage.EnsureBucket(ctx, client, "lib", ""), "check bucket lib")
	})
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, storage.Config{}.Enabled())
	assert.True(t, storage.Config{Endpoint: "localhost:9000"}.Enabled())
}
