package ports

import "net/http"

// HTTPClient is what the langlinks adapter needs to reach a MediaWiki API.
// The standard *http.Client satisfies this interface; tests can substitute a
// transport-level fake.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
