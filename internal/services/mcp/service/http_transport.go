package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/npc-arena/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var defaultAllowedHosts = []string{"localhost", "127.0.0.1", "::1"}

// HTTPTransport serves one MCP server over streamable HTTP.
type HTTPTransport struct {
	addr         string
	server       *mcp.Server
	allowedHosts map[string]struct{}
	httpServer   *http.Server
}

// NewHTTPTransport creates a transport for server on addr. Requests are
// accepted only when their Host is loopback or one of allowedHosts.
func NewHTTPTransport(addr string, server *mcp.Server, allowedHosts ...string) *HTTPTransport {
	hosts := make(map[string]struct{}, len(defaultAllowedHosts)+len(allowedHosts))
	for _, host := range append(append([]string{}, defaultAllowedHosts...), allowedHosts...) {
		host = strings.ToLower(strings.TrimSpace(host))
		if host != "" {
			hosts[host] = struct{}{}
		}
	}
	return &HTTPTransport{addr: addr, server: server, allowedHosts: hosts}
}

// Handler returns the HTTP routes for the transport.
func (t *HTTPTransport) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", t.requireLocalHost(streamable))
	mux.HandleFunc("/mcp/health", t.handleHealth)
	return mux
}

// Start serves HTTP until ctx is canceled or the listener fails.
func (t *HTTPTransport) Start(ctx context.Context) error {
	t.httpServer = &http.Server{
		Addr:              t.addr,
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		if err := t.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := t.validateHost(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}

func (t *HTTPTransport) requireLocalHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateHost(r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validateHost rejects requests whose Host header is not allowed, which
// blocks DNS rebinding against a loopback listener.
func (t *HTTPTransport) validateHost(r *http.Request) error {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.Trim(host, "[]"))
	if _, ok := t.allowedHosts[host]; !ok {
		return fmt.Errorf("host %q is not allowed", r.Host)
	}
	return nil
}
