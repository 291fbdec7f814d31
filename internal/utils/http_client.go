package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API while
// the application keeps a single place to add client-wide defaults.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that retries idempotent requests twice on
// transport errors and 5xx responses.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(2).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil {
				return err != nil
			}
			if r.Request.Method != resty.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= 500
		})

	return &HTTPClient{Client: client}
}
