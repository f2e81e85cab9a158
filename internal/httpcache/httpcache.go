/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package httpcache

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	gcache "github.com/gregjones/httpcache"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/s3cache"
)

// NewCachedHttpClient returns an http.Client that caches responses in the
// S3 web cache bucket. If the bucket cannot be reached it falls back to an
// in-memory cache. Origin cache headers are replaced so every response is
// kept for maxAge.
func NewCachedHttpClient(ctx context.Context, maxAge time.Duration) *http.Client {
	var cache gcache.Cache
	s3c := s3cache.New(ctx, s3cache.Options{
		Bucket:    internal.WebCacheBucket,
		LogErrors: true,
	})
	if err := s3c.Init(); err != nil {
		log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to memory cache", err)
		cache = gcache.NewMemoryCache()
	} else {
		cache = s3c
	}

	return newClient(cache, http.DefaultTransport, maxAge)
}

func newClient(cache gcache.Cache, base http.RoundTripper,
	maxAge time.Duration) *http.Client {

	hc := gcache.NewTransport(cache)
	// origin responses frequently forbid caching; override them so the
	// configured TTL wins
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: base,
		Request: func(req *http.Request) {
			if req.Header.Get("User-Agent") == "" {
				req.Header.Set("User-Agent", internal.UserAgent)
			}
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

// HeaderOverrideTransport runs Request and Response hooks around another
// RoundTripper.
type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
