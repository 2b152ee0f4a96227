package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewProxyFunc_Explicit(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "", "internal.local")

	req, _ := http.NewRequest(http.MethodGet, "https://api.dictionaryapi.dev/api/v2/entries/en/hello", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("expected proxy.local:3128, got %v", u)
	}

	req, _ = http.NewRequest(http.MethodGet, "https://internal.local/words", nil)
	u, err = proxy(req)
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u != nil {
		t.Errorf("expected NO_PROXY host to bypass proxy, got %v", u)
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	tests := map[string]string{
		"textlens/0.1 (+https://github.com/ppiankov/textlens)": "textlens",
		"curl/8.0": "curl",
		"plain":    "plain",
		"":         "",
	}
	for in, want := range tests {
		if got := NormalizeUserAgent(in); got != want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRobotsChecker(t *testing.T) {
	var fetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusOK)
			return
		}
		fetches.Add(1)
		_, _ = fmt.Fprint(w, "User-agent: textlens\nDisallow: /private/\nCrawl-delay: 2\n")
	}))
	defer server.Close()

	checker := NewRobotsChecker("textlens/0.1", &http.Client{Timeout: 5 * time.Second})
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/api/v2/entries/en/hello")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("expected public path to be allowed")
	}
	if delay != 2*time.Second {
		t.Errorf("expected crawl delay 2s, got %v", delay)
	}

	if allowed, _, _ := checker.CanFetch(ctx, server.URL+"/private/x"); allowed {
		t.Error("expected disallowed path to be rejected")
	}

	if fetches.Load() != 1 {
		t.Errorf("expected robots.txt to be fetched once, got %d", fetches.Load())
	}
}

func TestRobotsChecker_MissingRobotsAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewRobotsChecker("textlens", &http.Client{Timeout: 5 * time.Second})
	if allowed, _, _ := checker.CanFetch(context.Background(), server.URL+"/anything"); !allowed {
		t.Error("expected missing robots.txt to allow everything")
	}
}
