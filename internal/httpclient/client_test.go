package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "%PDF-1.4", string(body))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c, err := New(5 * time.Second)
	require.NoError(t, err)

	resp, err := c.Do(context.Background(), http.MethodPut, srv.URL+"/tika", []byte("%PDF-1.4"),
		map[string]string{"Content-Type": "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(resp.Body))
}

func TestNewDefaultsTimeout(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, c.Timeout())
}
