// Package callback receives the browser redirect that ends an OAuth sign-in.
//
// A command line client cannot read the address bar of the browser it opened,
// so it listens on the loopback interface instead and names that address as
// the sign-in callback. The API server redirects the browser there with the
// bearer token in the query string.
package callback

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// TokenHandler consumes a callback URL. It returns a channel that is closed
// once it has finished with the URL, or nil if the URL carried no token.
type TokenHandler func(ctx context.Context, u *url.URL) <-chan struct{}

// Server is a single-use loopback HTTP server for OAuth redirects.
type Server struct {
	nonce    string
	handler  TokenHandler
	listener net.Listener
	router   *mux.Router
	server   *http.Server
	done     chan error
	once     sync.Once
}

// NewServer binds a Server to an ephemeral port on 127.0.0.1. Call Start to
// begin serving.
func NewServer(handler TokenHandler) (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, "error listening on loopback interface")
	}
	s := newServer(handler)
	s.listener = listener
	return s, nil
}

func newServer(handler TokenHandler) *Server {
	s := &Server{
		nonce:   uuid.NewV4().String(),
		handler: handler,
		router:  mux.NewRouter(),
		done:    make(chan error, 1),
	}
	s.router.StrictSlash(true)
	s.router.HandleFunc(
		"/callback/{nonce}",
		s.callback,
	).Methods(http.MethodGet)
	s.router.HandleFunc(
		"/healthz",
		s.checkHealth,
	).Methods(http.MethodGet)
	s.server = &http.Server{Handler: s.router}
	return s
}

// CallbackURL returns the URL the API server should redirect to.
func (s *Server) CallbackURL() string {
	return fmt.Sprintf("http://%s/callback/%s", s.listener.Addr(), s.nonce)
}

// Start serves requests in the background until Close is called.
func (s *Server) Start() {
	go func() {
		if err := s.server.Serve(s.listener); err != nil &&
			err != http.ErrServerClosed {
			glog.Errorf("callback server error: %s", err)
			s.finish(errors.Wrap(err, "callback server error"))
		}
	}()
}

// Wait blocks until a redirect has been handled or ctx is done.
func (s *Server) Wait(ctx context.Context) error {
	select {
	case err := <-s.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP exposes the router, mostly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) finish(err error) {
	s.once.Do(func() {
		s.done <- err
	})
}

func (s *Server) callback(w http.ResponseWriter, r *http.Request) {
	nonce, err := uuid.FromString(mux.Vars(r)["nonce"])
	if err != nil || nonce.String() != s.nonce {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	if errCode := query.Get("error"); errCode != "" {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Authentication failed: %s\n", errCode)
		s.finish(errors.Errorf("authentication failed: %s", errCode))
		return
	}

	u := *r.URL
	finished := s.handler(r.Context(), &u)
	if finished == nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, "Authentication failed: no token was received.")
		s.finish(errors.New("no token received in callback"))
		return
	}
	<-finished

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(
		w,
		"Authentication complete. You may close this window and return to "+
			"your terminal.",
	)
	s.finish(nil)
}

func (s *Server) checkHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "{}")
}
