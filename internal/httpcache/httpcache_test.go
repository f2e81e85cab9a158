/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package httpcache

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gcache "github.com/gregjones/httpcache"

	"github.com/mikeb26/swisstd/internal"
)

func TestCachedClientOverridesHeaders(t *testing.T) {
	var hits atomic.Int32
	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		gotUA.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		w.Write([]byte("standings"))
	}))
	defer srv.Close()

	client := newClient(gcache.NewMemoryCache(), http.DefaultTransport, time.Hour)

	for i := 0; i < 3; i++ {
		resp, err := client.Get(srv.URL + "/event/1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || string(data) != "standings" {
			t.Fatalf("unexpected body %q (%v)", data, err)
		}
		if i > 0 && resp.Header.Get("X-From-Cache") != "1" {
			t.Errorf("request %d not served from cache", i)
		}
	}

	if hits.Load() != 1 {
		t.Errorf("origin hit %d times; want 1", hits.Load())
	}
	if ua, _ := gotUA.Load().(string); ua != internal.UserAgent {
		t.Errorf("User-Agent = %q; want %q", ua, internal.UserAgent)
	}
}

func TestHeaderOverrideKeepsCallerRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Header.Get("X-Hook")))
	}))
	defer srv.Close()

	rt := &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Request:   func(req *http.Request) { req.Header.Set("X-Hook", "yes") },
	}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if string(body) != "yes" {
		t.Errorf("request hook not applied, body %q", body)
	}
	if req.Header.Get("X-Hook") != "" {
		t.Errorf("caller's request was modified")
	}
}
