package google

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// ServiceFactory turns resolved credentials into client options for the
// generated Google API constructors. It performs a single resolution
// attempt per call and never builds a client handle on resolver failure.
type ServiceFactory struct {
	resolver *Resolver
}

// NewServiceFactory creates a factory backed by the given resolver.
func NewServiceFactory(resolver *Resolver) *ServiceFactory {
	return &ServiceFactory{resolver: resolver}
}

// ClientOptions resolves credentials for the scope set and returns the
// options to pass to a generated service constructor.
func (f *ServiceFactory) ClientOptions(ctx context.Context, scopes []string) ([]option.ClientOption, error) {
	creds, err := f.resolver.Resolve(ctx, scopes)
	if err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithHTTPClient(HTTPClient(ctx, creds.TokenSource))}, nil
}

// HTTPClient wraps a token source into an authenticated HTTP client.
// The client is pinned to HTTP/1.1 to avoid sporadic HTTP/2 protocol
// errors against the Google API frontends.
func HTTPClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)

	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}
	return client
}
