package google

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
)

const flowResponsePage = `<!DOCTYPE html>
<html>
<head><title>Authorization complete</title></head>
<body>
<p>Authorization complete. You can close this window and return to the application.</p>
</body>
</html>`

// runLocalFlow performs the installed-app authorization flow: it starts a
// loopback redirect listener, opens the authorization URL in the user's
// browser and blocks until the redirect delivers an authorization code,
// the flow fails, or ctx is cancelled.
func runLocalFlow(ctx context.Context, conf *oauth2.Config, logger *slog.Logger) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start redirect listener: %w", err)
	}
	defer func() {
		_ = ln.Close()
	}()

	conf.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())
	state := uuid.NewString()

	type flowResult struct {
		code string
		err  error
	}
	results := make(chan flowResult, 1)

	srv := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			if errMsg := q.Get("error"); errMsg != "" {
				http.Error(w, "Authorization failed: "+errMsg, http.StatusBadRequest)
				results <- flowResult{err: fmt.Errorf("authorization denied: %s", errMsg)}
				return
			}
			if q.Get("state") != state {
				http.Error(w, "Invalid state parameter", http.StatusBadRequest)
				results <- flowResult{err: fmt.Errorf("state parameter mismatch")}
				return
			}
			code := q.Get("code")
			if code == "" {
				http.Error(w, "Missing authorization code", http.StatusBadRequest)
				results <- flowResult{err: fmt.Errorf("redirect carried no authorization code")}
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(flowResponsePage))
			results <- flowResult{code: code}
		}),
	}
	go func() {
		_ = srv.Serve(ln)
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	logger.Info("opening browser for authorization", "url", authURL)
	if err := browser.OpenURL(authURL); err != nil {
		// Headless environments can still complete the flow manually.
		logger.Warn("failed to open browser, visit the authorization URL manually", "url", authURL, "error", err)
	}

	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		tok, err := conf.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
