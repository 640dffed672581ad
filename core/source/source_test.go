package source

import (
	"testing"
	"time"

	"fragment-loader/core/storage/mocks"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("HTTP", func(t *testing.T) {
		src, err := New(Config{Driver: DriverHTTP, BaseURL: "http://localhost"}, Deps{})
		assert.NoError(t, err)
		assert.IsType(t, &HTTPSource{}, src)
	})

	t.Run("Empty driver defaults to HTTP", func(t *testing.T) {
		src, err := New(Config{}, Deps{})
		assert.NoError(t, err)
		assert.IsType(t, &HTTPSource{}, src)
	})

	t.Run("Storage", func(t *testing.T) {
		src, err := New(Config{Driver: DriverStorage}, Deps{Storage: new(mocks.Client), Bucket: "fragments"})
		assert.NoError(t, err)
		assert.IsType(t, &StorageSource{}, src)
	})

	t.Run("Storage without client", func(t *testing.T) {
		_, err := New(Config{Driver: DriverStorage}, Deps{})
		assert.Error(t, err)
	})

	t.Run("Database without connection", func(t *testing.T) {
		_, err := New(Config{Driver: DriverDatabase}, Deps{})
		assert.Error(t, err)
	})

	t.Run("Dir", func(t *testing.T) {
		src, err := New(Config{Driver: DriverDir, Dir: t.TempDir()}, Deps{})
		assert.NoError(t, err)
		assert.IsType(t, &DirSource{}, src)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := New(Config{Driver: "ftp"}, Deps{})
		assert.ErrorContains(t, err, "unknown source driver")
	})
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.Timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.Timeout())
}
