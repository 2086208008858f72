package ports

import "net/http"

// HTTPClient abstracts HTTP operations. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
