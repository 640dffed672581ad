package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/parts/header.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<header>A</header><nav>B</nav>"))
		case "/parts/latin1.html":
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte{'<', 'p', '>', 0xE9, '<', '/', 'p', '>'})
		case "/parts/broken.html":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/", 5*time.Second)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		markup, err := src.Fetch(ctx, "/parts/header.html")
		require.NoError(t, err)
		assert.Equal(t, "<header>A</header><nav>B</nav>", markup)
	})

	t.Run("Relative reference", func(t *testing.T) {
		markup, err := src.Fetch(ctx, "parts/header.html")
		require.NoError(t, err)
		assert.Equal(t, "<header>A</header><nav>B</nav>", markup)
	})

	t.Run("Declared charset is decoded", func(t *testing.T) {
		markup, err := src.Fetch(ctx, "/parts/latin1.html")
		require.NoError(t, err)
		assert.Equal(t, "<p>é</p>", markup)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := src.Fetch(ctx, "/parts/missing.html")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.Code)
		assert.Equal(t, "failed to load component: /parts/missing.html (404)", statusErr.Error())
	})

	t.Run("Server error is not ErrNotFound", func(t *testing.T) {
		_, err := src.Fetch(ctx, "/parts/broken.html")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrNotFound))
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := src.Fetch(cctx, "/parts/header.html")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPSource_URL(t *testing.T) {
	src := NewHTTPSource("http://example.test/site/", time.Second)

	assert.Equal(t, "http://example.test/site/parts/a.html", src.URL("/parts/a.html"))
	assert.Equal(t, "http://example.test/site/parts/a.html", src.URL("parts/a.html"))
	assert.Equal(t, "https://cdn.test/x.html", src.URL("https://cdn.test/x.html"))
}
