package willyweather

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	baseURL = "https://tides.willyweather.com.au"

	// The site serves a stripped page to unknown clients, so present a
	// browser user agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	fetchTimeout = 10 * time.Second
)

var client = &http.Client{Timeout: fetchTimeout}

// Fetch retrieves the raw tide page for a location.
func Fetch(loc Location) (string, error) {
	return FetchURL(loc.URL())
}

// FetchURL retrieves the document at addr, returning its body as a string.
// Any transport error or non-2xx status yields a *FetchError.
func FetchURL(addr string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", &FetchError{URL: addr, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: addr, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: addr, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: addr, Err: err}
	}
	return string(body), nil
}
