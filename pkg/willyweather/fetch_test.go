package willyweather

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocationURL(t *testing.T) {
	want := "https://tides.willyweather.com.au/nsw/mid-north-coast/moonee-beach.html"
	if got := MooneeBeach.URL(); got != want {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
}

func TestFetchURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	doc, err := FetchURL(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if doc != samplePage {
		t.Errorf("got %d bytes, want the sample page", len(doc))
	}
	// The site serves a different page to non-browser clients.
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("request did not carry a browser user agent, got %q", gotUA)
	}
}

func TestFetchURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone surfing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := FetchURL(srv.URL)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Errorf("error is %T, want *FetchError: %v", err, err)
	}
}

func TestFetchURLConnectionRefused(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := FetchURL(srv.URL)
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		t.Errorf("error is %T, want *FetchError: %v", err, err)
	}
}
