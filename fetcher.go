package newsclip

import "context"

// Fetcher retrieves the HTML of a page over HTTP.
type Fetcher interface {
	// Fetch issues a GET request and returns the body decoded as UTF-8.
	// Returns ENOTFOUND for HTTP 404, ETIMEOUT when the request exceeds its
	// timeout and ENETWORK for any other transport or HTTP failure.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Resolver follows redirects to find the landing URL of a link.
type Resolver interface {
	// Resolve returns the final URL reached after following redirects.
	// Returns ENETWORK if the URL cannot be reached.
	Resolve(ctx context.Context, url string) (string, error)
}
