package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/williamokano/video_uploader/pkg/identity"
	"github.com/williamokano/video_uploader/pkg/storage"
)

// uploaderAPI is the part of manager.Uploader used by Backend
type uploaderAPI interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// headAPI is the part of s3.Client used by Backend
type headAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

type Backend struct {
	name     string
	bucket   string
	client   headAPI
	uploader uploaderAPI
}

func init() {
	storage.RegisterBackend("s3", func(ctx context.Context, cfg storage.Config) (storage.Backend, error) {
		return New(ctx, cfg)
	})
}

// New creates a new S3 backend bound to the configured bucket
func New(ctx context.Context, cfg storage.Config) (*Backend, error) {
	s3Cfg, err := parseConfig(cfg.Options)
	if err != nil {
		return nil, storage.WrapError(cfg.Name, "init", err)
	}

	provider, err := credentialsProvider(ctx, s3Cfg)
	if err != nil {
		return nil, storage.WrapError(cfg.Name, "credentials", err)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s3Cfg.Region),
		config.WithCredentialsProvider(provider),
	)
	if err != nil {
		return nil, storage.WrapError(cfg.Name, "init", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
		}
		o.UsePathStyle = s3Cfg.ForcePathStyle
	})

	return newBackend(cfg.Name, s3Cfg.Bucket, client, manager.NewUploader(client)), nil
}

func newBackend(name, bucket string, client headAPI, uploader uploaderAPI) *Backend {
	return &Backend{
		name:     name,
		bucket:   bucket,
		client:   client,
		uploader: uploader,
	}
}

func (b *Backend) Name() string   { return b.name }
func (b *Backend) Type() string   { return "s3" }
func (b *Backend) Bucket() string { return b.bucket }

// Upload stores body under key in the bucket
func (b *Backend) Upload(ctx context.Context, key string, body io.Reader, opts storage.UploadOptions) (*storage.UploadInfo, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if opts.ACL != "" {
		input.ACL = types.ObjectCannedACL(opts.ACL)
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	out, err := b.uploader.Upload(ctx, input)
	if err != nil {
		return nil, storage.WrapError(b.name, "upload", err)
	}

	info := &storage.UploadInfo{
		Key:       key,
		Location:  out.Location,
		ETag:      aws.ToString(out.ETag),
		VersionID: aws.ToString(out.VersionID),
	}
	if out.Key != nil {
		info.Key = *out.Key
	}

	return info, nil
}

// Stat returns metadata about an object
func (b *Backend) Stat(ctx context.Context, key string) (*storage.FileInfo, error) {
	result, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, storage.WrapError(b.name, "stat", fmt.Errorf("%s: %w", key, storage.ErrNotFound))
		}
		return nil, storage.WrapError(b.name, "stat", err)
	}

	info := &storage.FileInfo{
		Key:         key,
		Size:        aws.ToInt64(result.ContentLength),
		ContentType: aws.ToString(result.ContentType),
	}
	if result.LastModified != nil {
		info.ModTime = *result.LastModified
	}

	return info, nil
}

// Exists checks if an object exists
func (b *Backend) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Close is a no-op for S3
func (b *Backend) Close() error {
	return nil
}

// Helper functions

func credentialsProvider(ctx context.Context, cfg *Config) (aws.CredentialsProvider, error) {
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		return credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""), nil
	}
	return identity.New(ctx, cfg.Region, cfg.IdentityPoolID)
}

func parseConfig(options map[string]interface{}) (*Config, error) {
	cfg := &Config{}

	if v, ok := options["region"].(string); ok && v != "" {
		cfg.Region = v
	} else {
		return nil, fmt.Errorf("missing required option region: %w", storage.ErrInvalidConfig)
	}
	if v, ok := options["bucket"].(string); ok && v != "" {
		cfg.Bucket = v
	} else {
		return nil, fmt.Errorf("missing required option bucket: %w", storage.ErrInvalidConfig)
	}
	if v, ok := options["identity_pool_id"].(string); ok {
		cfg.IdentityPoolID = v
	}
	if v, ok := options["endpoint"].(string); ok {
		cfg.Endpoint = v
	}
	if v, ok := options["force_path_style"].(bool); ok {
		cfg.ForcePathStyle = v
	}
	if v, ok := options["access_key_id"].(string); ok {
		cfg.AccessKeyID = v
	}
	if v, ok := options["secret_access_key"].(string); ok {
		cfg.SecretAccessKey = v
	}

	if cfg.IdentityPoolID == "" && (cfg.AccessKeyID == "" || cfg.SecretAccessKey == "") {
		return nil, fmt.Errorf("either identity_pool_id or access_key_id/secret_access_key is required: %w", storage.ErrInvalidConfig)
	}

	return cfg, nil
}
