package cryptofolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// contains http utils to deal with the quote service

// apiKeyTransport decorates every request with the CoinGecko demo API key
// header when a key is configured. Without a key, requests go out untouched
// and run against the public rate limits.
type apiKeyTransport struct {
	base   http.RoundTripper
	header string
	key    string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.key != "" {
		// Per RoundTripper contract the request must not be mutated in place.
		req = req.Clone(req.Context())
		req.Header.Set(t.header, t.key)
	}
	return t.base.RoundTrip(req)
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
