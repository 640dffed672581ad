package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"fragment-loader/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestStorageSource_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "fragments", "site/parts/header.html", mock.Anything).
			Return(io.NopCloser(strings.NewReader("<header>A</header>")), nil)

		src := NewStorageSource(client, "fragments", "/site/")
		markup, err := src.Fetch(ctx, "/parts/header.html")
		require.NoError(t, err)
		assert.Equal(t, "<header>A</header>", markup)
		client.AssertExpectations(t)
	})

	t.Run("Missing key on read", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "fragments", "parts/missing.html", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}}, nil)

		src := NewStorageSource(client, "fragments", "")
		_, err := src.Fetch(ctx, "/parts/missing.html")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Transport error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "fragments", "parts/a.html", mock.Anything).
			Return(nil, errors.New("connection refused"))

		src := NewStorageSource(client, "fragments", "")
		_, err := src.Fetch(ctx, "parts/a.html")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestStorageSource_ObjectName(t *testing.T) {
	src := NewStorageSource(nil, "fragments", "site")

	assert.Equal(t, "site/parts/a.html", src.ObjectName("/parts/a.html"))
	assert.Equal(t, "site/a.html", src.ObjectName("../../a.html"))
	assert.Equal(t, "parts/a.html", NewStorageSource(nil, "fragments", "").ObjectName("parts/a.html"))
}
