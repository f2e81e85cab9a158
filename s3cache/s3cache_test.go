/* Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 */
package s3cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gregjones/httpcache/test"

	"github.com/mikeb26/swisstd/internal"
)

// memObjects is an in-memory stand-in for the S3 object API.
type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemObjects() *memObjects {
	return &memObjects{objects: make(map[string][]byte)}
}

func (m *memObjects) GetObject(_ context.Context, in *s3.GetObjectInput,
	_ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *memObjects) PutObject(_ context.Context, in *s3.PutObjectInput,
	_ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {

	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *memObjects) DeleteObject(_ context.Context, in *s3.DeleteObjectInput,
	_ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestCacheContract(t *testing.T) {
	for _, gz := range []bool{false, true} {
		t.Run(fmt.Sprintf("gzip=%v", gz), func(t *testing.T) {
			cache := New(context.Background(), Options{Bucket: "b", Gzip: gz})
			cache.Client = newMemObjects()
			test.Cache(t, cache)
		})
	}
}

func TestGzipStoredCompressed(t *testing.T) {
	objs := newMemObjects()
	cache := New(context.Background(), Options{Bucket: "b", Gzip: true})
	cache.Client = objs

	payload := []byte(strings.Repeat("crosstable ", 100))
	cache.Set("k", payload)

	stored := objs.objects[cache.objectKey("k")]
	if len(stored) == 0 || len(stored) >= len(payload) {
		t.Errorf("expected compressed object, got %d bytes for %d", len(stored),
			len(payload))
	}
	got, ok := cache.Get("k")
	if !ok || !bytes.Equal(got, payload) {
		t.Errorf("round trip through gzip failed")
	}
}

func TestObjectKey(t *testing.T) {
	plain := New(context.Background(), Options{Bucket: "b"})
	gz := New(context.Background(), Options{Bucket: "b", Prefix: "uscf", Gzip: true})

	k := plain.objectKey("https://example.com/a")
	if !strings.HasPrefix(k, DefaultPrefix+"/") || len(k) != len(DefaultPrefix)+1+64 {
		t.Errorf("unexpected key %q", k)
	}
	if k == plain.objectKey("https://example.com/b") {
		t.Errorf("distinct urls share a key")
	}
	if gk := gz.objectKey("https://example.com/a"); !strings.HasPrefix(gk, "uscf/") ||
		!strings.HasSuffix(gk, ".gz") {
		t.Errorf("unexpected gzip key %q", gk)
	}
}

func TestS3Cache(t *testing.T) {
	cache := New(context.Background(), Options{Bucket: internal.WebCacheBucket,
		Prefix: "s3cache-test", LogErrors: true})
	err := cache.Init()
	if err != nil {
		t.Skip(fmt.Sprintf("Skipping test due to lack of access to %v: %v",
			internal.WebCacheBucket, err))
	}

	test.Cache(t, cache)
}
