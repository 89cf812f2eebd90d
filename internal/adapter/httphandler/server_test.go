package httphandler

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServerClose(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		s := NewHTTPServer(ln.Addr().String(), http.NotFoundHandler())
		done := make(chan struct{})
		go func() {
			s.Serve(ln)
			close(done)
		}()

		require.NoError(t, s.Close(context.Background()))
		<-done
	})

	t.Run("DeadlineWithRequestInFlight", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		entered := make(chan struct{})
		release := make(chan struct{})
		s := NewHTTPServer(ln.Addr().String(), http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				close(entered)
				<-release
			},
		))
		go s.Serve(ln)

		go func() {
			resp, err := http.Get("http://" + ln.Addr().String() + "/")
			if err == nil {
				_ = resp.Body.Close()
			}
		}()
		<-entered

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err = s.Close(ctx)
		close(release)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
