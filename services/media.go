package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
)

// MediaStore keeps uploaded images and documents. Stored names are relative
// keys such as "projects/3f2a1c9b_shot.png"; URL turns a key into a link a
// browser can fetch.
type MediaStore interface {
	Save(ctx context.Context, dir, filename string, r io.Reader, contentType string) (string, error)
	URL(name string) string
}

// NewMediaStore returns an S3 store when MEDIA_S3_BUCKET is set and a local
// filesystem store otherwise.
func NewMediaStore(ctx context.Context, cfg config.MediaConfig) (MediaStore, error) {
	if cfg.S3Bucket == "" {
		return NewLocalMediaStore(cfg.Root, cfg.URL), nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.NewStorageError("s3", err)
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, awsCfg.Region)
	}
	log.Info().Str("bucket", cfg.S3Bucket).Msg("Using S3 media storage")
	return NewS3MediaStore(s3.NewFromConfig(awsCfg), cfg.S3Bucket, publicURL), nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// mediaKey builds a collision-free key under dir from an uploaded filename.
func mediaKey(dir, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Trim(unsafeFilename.ReplaceAllString(base, "_"), "._")
	if base == "" {
		base = "upload"
	}
	return path.Join(dir, uuid.NewString()[:8]+"_"+base)
}

// LocalMediaStore writes files below root and serves them under baseURL.
type LocalMediaStore struct {
	root    string
	baseURL string
}

func NewLocalMediaStore(root, baseURL string) *LocalMediaStore {
	return &LocalMediaStore{root: root, baseURL: baseURL}
}

func (s *LocalMediaStore) Root() string { return s.root }

func (s *LocalMediaStore) Save(ctx context.Context, dir, filename string, r io.Reader, contentType string) (string, error) {
	key := mediaKey(dir, filename)
	dst := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errs.NewStorageError("local", err)
	}
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.NewStorageError("local", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", errs.NewStorageError("local", err)
	}
	return key, nil
}

func (s *LocalMediaStore) URL(name string) string {
	return s.baseURL + name
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3MediaStore uploads files to a bucket. Objects are expected to be publicly
// readable through publicURL (bucket policy or CDN).
type S3MediaStore struct {
	client    objectPutter
	bucket    string
	publicURL string
}

func NewS3MediaStore(client objectPutter, bucket, publicURL string) *S3MediaStore {
	return &S3MediaStore{client: client, bucket: bucket, publicURL: strings.TrimSuffix(publicURL, "/")}
}

func (s *S3MediaStore) Save(ctx context.Context, dir, filename string, r io.Reader, contentType string) (string, error) {
	key := mediaKey(dir, filename)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.NewStorageError("s3", err)
	}
	return key, nil
}

func (s *S3MediaStore) URL(name string) string {
	return s.publicURL + "/" + name
}
