package willyweather

import "fmt"

// FetchError reports a network or HTTP failure retrieving the tide page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a tide page whose structure could not be understood.
// The page markup is owned by the upstream site; a ParseError usually means
// the site changed its layout and the selectors in parse.go need updating.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse tide page: " + e.Reason
}

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}
