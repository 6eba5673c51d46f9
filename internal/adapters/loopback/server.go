package loopback

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const returnPath = "/auth/callback"

const (
	returnPage  = `<html><body><p>Authorization response received. You can close this window and return to the terminal.</p></body></html>`
	failurePage = `<html><body><p>The provider reported an error. You can close this window; the terminal has the details.</p></body></html>`
)

var ErrReturnTimeout = errors.New("timed out waiting for authorization return")

// Server captures the provider's return redirect on a loopback address.
// It records the full return URL, query string included, and leaves its
// interpretation to the caller: an error return is captured the same way
// a code return is.
type Server struct {
	listener   net.Listener
	server     *http.Server
	resultCh   chan returnResult
	resultOnce sync.Once
	closeOnce  sync.Once
}

type returnResult struct {
	url string
	err error
}

func Start(listenAddr string) (*Server, error) {
	if listenAddr == "" {
		listenAddr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, fmt.Errorf("listen loopback server: %w", err)
	}

	srv := &Server{
		listener: listener,
		resultCh: make(chan returnResult, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(returnPath, srv.handleReturn)

	srv.server = &http.Server{Handler: mux}

	go func() {
		if serveErr := srv.server.Serve(srv.listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			srv.trySendResult(returnResult{err: serveErr})
		}
	}()

	log.WithField("addr", listener.Addr().String()).Debug("loopback return server listening")

	return srv, nil
}

// RedirectURI is the address the provider sends the browser back to.
func (s *Server) RedirectURI() string {
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return fmt.Sprintf("http://localhost:%d%s", tcpAddr.Port, returnPath)
	}
	return "http://localhost" + returnPath
}

// WaitForReturn blocks until the provider redirects the browser back, then
// returns the full return URL. The server shuts down once a return is
// delivered or the timeout elapses.
func (s *Server) WaitForReturn(timeout time.Duration) (string, error) {
	defer func() { _ = s.Close() }()

	select {
	case result := <-s.resultCh:
		return result.url, result.err
	case <-time.After(timeout):
		return "", ErrReturnTimeout
	}
}

func (s *Server) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		closeErr = s.server.Close()
	})
	return closeErr
}

func (s *Server) handleReturn(w http.ResponseWriter, r *http.Request) {
	delivered := false
	s.resultOnce.Do(func() {
		s.resultCh <- returnResult{url: s.returnURL(r)}
		delivered = true
	})

	if !delivered {
		http.Error(w, "authorization return already captured", http.StatusGone)
		return
	}

	log.WithField("path", r.URL.Path).Debug("captured authorization return")

	// The error parameter is peeked only to pick the page; classifying the
	// return stays with the caller.
	page := returnPage
	if category := r.URL.Query().Get("error"); category != "" {
		log.WithField("error", category).Warn("provider returned an error")
		page = failurePage
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func (s *Server) returnURL(r *http.Request) string {
	returned := s.RedirectURI()
	if r.URL.RawQuery != "" {
		returned += "?" + r.URL.RawQuery
	}
	return returned
}

func (s *Server) trySendResult(result returnResult) {
	s.resultOnce.Do(func() {
		s.resultCh <- result
	})
}
