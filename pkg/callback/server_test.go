package callback

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	urls []string
}

func (r *recordingHandler) handle(_ context.Context, u *url.URL) <-chan struct{} {
	r.urls = append(r.urls, u.String())
	if u.Query().Get("token") == "" {
		return nil
	}
	done := make(chan struct{})
	close(done)
	return done
}

func TestCallback(t *testing.T) {
	testCases := []struct {
		name       string
		path       func(s *Server) string
		assertions func(*testing.T, *httptest.ResponseRecorder, *Server, []string)
	}{
		{
			name: "token delivered",
			path: func(s *Server) string {
				return fmt.Sprintf("/callback/%s?token=ABC", s.nonce)
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				s *Server,
				urls []string,
			) {
				require.Equal(t, http.StatusOK, rr.Code)
				require.Contains(t, rr.Body.String(), "Authentication complete")
				require.Len(t, urls, 1)
				require.Contains(t, urls[0], "token=ABC")
				require.NoError(t, s.Wait(context.Background()))
			},
		},
		{
			name: "wrong nonce",
			path: func(*Server) string {
				return "/callback/6ba7b810-9dad-11d1-80b4-00c04fd430c8?token=ABC"
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				s *Server,
				urls []string,
			) {
				require.Equal(t, http.StatusNotFound, rr.Code)
				require.Empty(t, urls)
				ctx, cancel := context.WithTimeout(
					context.Background(),
					10*time.Millisecond,
				)
				defer cancel()
				require.Equal(t, context.DeadlineExceeded, s.Wait(ctx))
			},
		},
		{
			name: "malformed nonce",
			path: func(*Server) string {
				return "/callback/not-a-uuid?token=ABC"
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				_ *Server,
				urls []string,
			) {
				require.Equal(t, http.StatusNotFound, rr.Code)
				require.Empty(t, urls)
			},
		},
		{
			name: "no token",
			path: func(s *Server) string {
				return fmt.Sprintf("/callback/%s", s.nonce)
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				s *Server,
				urls []string,
			) {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				require.Len(t, urls, 1)
				err := s.Wait(context.Background())
				require.Error(t, err)
				require.Contains(t, err.Error(), "no token received")
			},
		},
		{
			name: "provider error",
			path: func(s *Server) string {
				return fmt.Sprintf("/callback/%s?error=access_denied", s.nonce)
			},
			assertions: func(
				t *testing.T,
				rr *httptest.ResponseRecorder,
				s *Server,
				urls []string,
			) {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				require.Empty(t, urls)
				err := s.Wait(context.Background())
				require.Error(t, err)
				require.Contains(t, err.Error(), "access_denied")
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler := &recordingHandler{}
			s := newServer(handler.handle)
			req, err := http.NewRequest(http.MethodGet, testCase.path(s), nil)
			require.NoError(t, err)
			rr := httptest.NewRecorder()
			s.ServeHTTP(rr, req)
			testCase.assertions(t, rr, s, handler.urls)
		})
	}
}

func TestServerEndToEnd(t *testing.T) {
	handler := &recordingHandler{}
	s, err := NewServer(handler.handle)
	require.NoError(t, err)
	s.Start()
	defer s.Close(context.Background()) // nolint: errcheck

	callbackURL := s.CallbackURL()
	require.True(t, strings.HasPrefix(callbackURL, "http://127.0.0.1:"))

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", s.listener.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(callbackURL + "?token=ABC")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "Authentication complete")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))
}
