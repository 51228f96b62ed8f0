package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectGetter is the slice of the S3 client the opener needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a client for AWS or, when Endpoint is set, for an
// S3 compatible store addressed path style.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.AnonymousCredentials{},
	}
	if cfg.AccessKey != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		)
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

var ErrNoObjectStore = errors.New("s3 source configured without an object store client")

// Opener resolves a restaurant source location: a local path, a
// file:// URL, or s3://bucket/key.
type Opener struct {
	objects ObjectGetter
}

func NewOpener(objects ObjectGetter) *Opener {
	return &Opener{objects: objects}
}

func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.Contains(location, "://") {
		return openFile(location)
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid source %q: %w", location, err)
	}

	switch u.Scheme {
	case "file":
		return openFile(u.Path)
	case "s3":
		return o.openObject(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	}
	return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	return f, nil
}

func (o *Opener) openObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if o.objects == nil {
		return nil, ErrNoObjectStore
	}
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 source needs bucket and key, got %q/%q", bucket, key)
	}

	out, err := o.objects.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}
