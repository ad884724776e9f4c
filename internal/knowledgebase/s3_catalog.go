package knowledgebase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the part of the S3 client the catalog needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Catalog serves lookups from a JSON manifest object. The manifest is
// fetched on first use and kept for the life of the execution environment.
type S3Catalog struct {
	s3     S3Client
	bucket string
	key    string

	mu     sync.Mutex
	byName map[string]*KnowledgeBase
}

func NewS3Catalog(client S3Client, uri string) (*S3Catalog, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	return &S3Catalog{s3: client, bucket: bucket, key: key}, nil
}

// ParseS3URI splits s3://bucket/key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri needs bucket and key: %q", uri)
	}
	return bucket, key, nil
}

func (c *S3Catalog) Lookup(ctx context.Context, requested string) (*KnowledgeBase, error) {
	idx, err := c.index(ctx)
	if err != nil {
		return nil, err
	}
	kb, ok := idx[NormalizeName(requested)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKnowledgeBase, requested)
	}
	cp := *kb
	if strings.TrimSpace(cp.Name) == "" {
		cp.Name = requested
	}
	return checkEnabled(&cp)
}

func (c *S3Catalog) index(ctx context.Context) (map[string]*KnowledgeBase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.byName != nil {
		return c.byName, nil
	}

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(c.key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 getobject %s/%s: %w", c.bucket, c.key, err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog manifest: %w", err)
	}

	var entries []KnowledgeBase
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog manifest parse: %w", err)
	}

	idx := make(map[string]*KnowledgeBase, len(entries))
	for i := range entries {
		kb := &entries[i]
		for _, n := range append([]string{kb.Name}, kb.Aliases...) {
			k := NormalizeName(n)
			if k == "" {
				continue
			}
			// first entry wins on duplicate names
			if _, seen := idx[k]; !seen {
				idx[k] = kb
			}
		}
	}
	c.byName = idx
	return idx, nil
}
