/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that stores and
 * retrieves data using Amazon S3. It is based on the original
 * github.com/sourcegraph/s3cache but updated to use the more modern
 * aws-sdk-go-v2 and golang standard library functions
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// DefaultPrefix is the key prefix used when Options.Prefix is empty.
const DefaultPrefix = "s3cache"

// ObjectAPI is the subset of *s3.Client the cache uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput,
		optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput,
		optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures a Cache.
type Options struct {
	// Bucket is the S3 bucket name, e.g. "mybucket".
	Bucket string
	// Prefix namespaces the cache's objects within the bucket so several
	// tools can share one bucket.
	Prefix string
	// Gzip compresses entries on Set and decompresses them on Get. Object
	// keys get a ".gz" suffix.
	Gzip bool
	// LogErrors logs failed S3 calls. A missing key is a miss, not an error.
	LogErrors bool
}

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration loaded by Init.
	Config aws.Config

	// Client is what the cache talks to. Init sets it from Config; callers
	// may supply their own instead of calling Init.
	Client ObjectAPI

	opts Options
	ctx  context.Context
}

// New returns a new Cache backed by opts.Bucket. Callers should invoke Init
// on the returned Cache before use unless they set Client themselves.
func New(ctx context.Context, opts Options) *Cache {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Cache{ctx: ctx, opts: opts}
}

// Init loads the default AWS configuration and checks that the bucket is
// reachable. The default configuration sources are:
// * Environment Variables (e.g. AWS_ACCESS_KEY_ID and AWS_SECRET_KEY)
// * Shared Configuration and Shared Credentials files.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(c.Config)

	if _, err = client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.opts.Bucket),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.opts.Bucket, err)
	}
	if _, err = client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.opts.Bucket),
		MaxKeys: aws.Int32(1),
		Prefix:  aws.String(c.opts.Prefix + "/"),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.opts.Bucket, err)
	}
	c.Client = client

	return nil
}

// Get returns the cached response bytes for key, if present.
func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.logf("s3cache.get: failed to get object %v: %v", objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	var rdr io.Reader = resp.Body
	if c.opts.Gzip {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			c.logf("s3cache.get: failed to open compressed object %v: %v",
				objKey, err)
			return nil, false
		}
		defer gr.Close()
		rdr = gr
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		c.logf("s3cache.get: failed to read object %v: %v", objKey, err)
		return nil, false
	}

	return data, true
}

// Set stores data in the cache under key.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
		Body:   bytes.NewReader(data),
	}
	if c.opts.Gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			c.logf("s3cache.set: failed to gzip data for %v: %v", objKey, err)
			return
		}
		if err := gw.Close(); err != nil {
			c.logf("s3cache.set: failed to close gzip writer for %v: %v",
				objKey, err)
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v: %v", objKey, err)
	}
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	objKey := c.objectKey(key)
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.opts.Bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v: %v", objKey, err)
	}
}

func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := path.Join(c.opts.Prefix, hex.EncodeToString(sum[:]))
	if c.opts.Gzip {
		objKey += ".gz"
	}
	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.opts.LogErrors {
		log.Printf(format, args...)
	}
}
