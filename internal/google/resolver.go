package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/workspacekit/workspace-mcp/internal/logging"
)

// Source identifies which resolution strategy produced a credential.
type Source string

const (
	SourceInlineConfig   Source = "inline-config"
	SourceServiceAccount Source = "service-account"
	SourceStoredToken    Source = "stored-token"
	SourceInteractive    Source = "interactive"
)

// Credentials is a resolved, usable credential for a requested scope set.
type Credentials struct {
	TokenSource oauth2.TokenSource
	Scopes      []string
	Source      Source
}

// MetricsRecorder receives credential-resolution and token-refresh
// outcomes. *instrumentation.Metrics satisfies it.
type MetricsRecorder interface {
	RecordCredentialResolution(ctx context.Context, source, status string)
	RecordTokenRefresh(ctx context.Context, result string)
}

// Resolver produces Credentials for a scope set by walking the fallback
// chain described in the package documentation. A Resolver is safe to call
// repeatedly; each call performs a single pass over the chain.
type Resolver struct {
	cfg     Config
	store   *TokenStore
	logger  *slog.Logger
	metrics MetricsRecorder

	// authorize runs the interactive authorization flow. Swapped out in
	// tests to avoid opening a browser.
	authorize func(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)
}

// NewResolver creates a credential resolver for the given configuration.
// A nil logger falls back to slog.Default().
func NewResolver(cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{
		cfg:    cfg,
		store:  NewTokenStore(cfg.TokenPath),
		logger: logger,
	}
	r.authorize = func(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
		return runLocalFlow(ctx, conf, logger)
	}
	return r
}

// SetMetrics attaches a metrics recorder. Call before the first Resolve.
func (r *Resolver) SetMetrics(m MetricsRecorder) {
	r.metrics = m
}

// Resolve returns credentials for the requested scopes, or an AuthError if
// every strategy in the chain is inapplicable or fails.
func (r *Resolver) Resolve(ctx context.Context, scopes []string) (*Credentials, error) {
	if len(scopes) == 0 {
		return nil, fmt.Errorf("at least one scope is required")
	}

	creds, err := r.resolve(ctx, scopes)
	if r.metrics != nil {
		if err != nil {
			r.metrics.RecordCredentialResolution(ctx, "", "error")
		} else {
			r.metrics.RecordCredentialResolution(ctx, string(creds.Source), "success")
		}
	}
	return creds, err
}

func (r *Resolver) resolve(ctx context.Context, scopes []string) (*Credentials, error) {
	if creds := r.fromInlineConfig(ctx, scopes); creds != nil {
		return creds, nil
	}
	if creds := r.fromServiceAccountFile(ctx, scopes); creds != nil {
		return creds, nil
	}
	if creds := r.fromStoredToken(ctx, scopes); creds != nil {
		return creds, nil
	}
	return r.fromInteractiveFlow(ctx, scopes)
}

// fromInlineConfig decodes base64 service-account JSON supplied directly in
// the configuration. Any decode or parse failure makes the strategy
// inapplicable rather than fatal.
func (r *Resolver) fromInlineConfig(ctx context.Context, scopes []string) *Credentials {
	if r.cfg.CredentialsConfig == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(r.cfg.CredentialsConfig)
	if err != nil {
		r.logger.Warn("failed to decode CREDENTIALS_CONFIG", logging.Err(err))
		return nil
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		r.logger.Warn("failed to parse credentials from CREDENTIALS_CONFIG", logging.Err(err))
		return nil
	}

	r.logger.Info("using credentials from CREDENTIALS_CONFIG")
	return &Credentials{TokenSource: creds.TokenSource, Scopes: scopes, Source: SourceInlineConfig}
}

// fromServiceAccountFile loads a service-account key file if one exists at
// the configured path.
func (r *Resolver) fromServiceAccountFile(ctx context.Context, scopes []string) *Credentials {
	if r.cfg.ServiceAccountPath == "" {
		return nil
	}

	data, err := os.ReadFile(r.cfg.ServiceAccountPath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("failed to read service account file", "path", r.cfg.ServiceAccountPath, logging.Err(err))
		}
		return nil
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		r.logger.Warn("service account authentication failed", "path", r.cfg.ServiceAccountPath, logging.Err(err))
		return nil
	}

	r.logger.Info("using service account credentials", "path", r.cfg.ServiceAccountPath)
	return &Credentials{TokenSource: creds.TokenSource, Scopes: scopes, Source: SourceServiceAccount}
}

// fromStoredToken loads a previously persisted user token. A valid,
// scope-covering token is returned unchanged; an expired token carrying a
// refresh token is refreshed online and the refreshed document is written
// back. Anything else falls through to the interactive flow.
func (r *Resolver) fromStoredToken(ctx context.Context, scopes []string) *Credentials {
	if !r.store.Exists() {
		return nil
	}

	stored, err := r.store.Load()
	if err != nil {
		r.logger.Warn("failed to load stored token", "path", r.store.Path(), logging.Err(err))
		return nil
	}

	if !stored.HasScopes(scopes) {
		r.logger.Warn("stored token does not cover requested scopes", "path", r.store.Path())
		return nil
	}

	conf := stored.OAuthConfig()
	tok := stored.OAuthToken()

	if tok.Valid() {
		r.logger.Info("using stored token", "path", r.store.Path())
		return &Credentials{
			TokenSource: conf.TokenSource(ctx, tok),
			Scopes:      scopes,
			Source:      SourceStoredToken,
		}
	}

	if tok.RefreshToken == "" {
		r.logger.Warn("stored token expired and has no refresh token", "path", r.store.Path())
		return nil
	}
	if conf.ClientID == "" {
		r.logger.Warn("stored token has no client metadata, cannot refresh", "path", r.store.Path())
		return nil
	}

	ts := conf.TokenSource(ctx, tok)
	fresh, err := ts.Token()
	if err != nil {
		r.logger.Warn("failed to refresh stored token", logging.Err(err))
		if r.metrics != nil {
			r.metrics.RecordTokenRefresh(ctx, "failure")
		}
		return nil
	}
	if r.metrics != nil {
		r.metrics.RecordTokenRefresh(ctx, "success")
	}

	// Google omits the refresh token from refresh responses; keep the one
	// we already have so the persisted document stays refreshable.
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = tok.RefreshToken
	}

	r.persistToken(fresh, stored.ClientID, stored.ClientSecret, stored.TokenURI, stored.Scopes)
	r.logger.Info("refreshed stored token", "path", r.store.Path())
	return &Credentials{
		TokenSource: oauth2.ReuseTokenSource(fresh, ts),
		Scopes:      scopes,
		Source:      SourceStoredToken,
	}
}

// fromInteractiveFlow runs the browser-based installed-app flow. This is
// the end of the chain: a missing client-secrets file or a failed flow
// yields an AuthError.
func (r *Resolver) fromInteractiveFlow(ctx context.Context, scopes []string) (*Credentials, error) {
	if r.cfg.CredentialsPath == "" {
		return nil, &AuthError{Scopes: scopes, Err: ErrNoCredentials}
	}

	data, err := os.ReadFile(r.cfg.CredentialsPath)
	if err != nil {
		r.logger.Error("OAuth client secrets not found", "path", r.cfg.CredentialsPath)
		return nil, &AuthError{Scopes: scopes, Err: fmt.Errorf("%w: client secrets unavailable at %s", ErrNoCredentials, r.cfg.CredentialsPath)}
	}

	conf, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, &AuthError{Scopes: scopes, Err: fmt.Errorf("failed to parse client secrets: %w", err)}
	}

	tok, err := r.authorize(ctx, conf)
	if err != nil {
		return nil, &AuthError{Scopes: scopes, Err: fmt.Errorf("authorization flow failed: %w", err)}
	}

	r.persistToken(tok, conf.ClientID, conf.ClientSecret, conf.Endpoint.TokenURL, scopes)
	r.logger.Info("completed interactive authorization flow")
	return &Credentials{
		TokenSource: conf.TokenSource(ctx, tok),
		Scopes:      scopes,
		Source:      SourceInteractive,
	}, nil
}

// persistToken writes an obtained or refreshed token back to the token
// file. Persistence failures are logged but never fail resolution; the
// credential in memory is still usable for this process.
func (r *Resolver) persistToken(tok *oauth2.Token, clientID, clientSecret, tokenURI string, scopes []string) {
	stored := &StoredToken{
		Token:        tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenURI:     tokenURI,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       scopes,
		Expiry:       tok.Expiry.UTC().Truncate(time.Second),
	}
	if err := r.store.Save(stored); err != nil {
		r.logger.Warn("failed to persist token", "path", r.store.Path(), logging.Err(err))
	}
}
