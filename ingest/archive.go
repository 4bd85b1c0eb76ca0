package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"newsdesk/types"
)

// ArchiveConfig contains minimal configuration for the article archive.
// Empty values fall back to the standard AWS config/credential chain.
type ArchiveConfig struct {
	// Region to use for requests, e.g. "ap-northeast-2". If empty, AWS defaults apply.
	Region string
	// Profile selects a named shared config/credentials profile.
	Profile string
	// Bucket receives the archived articles.
	Bucket string
	// UsePathStyle forces path-style addressing (useful for S3-compatible providers).
	UsePathStyle bool
}

// Archive stores raw articles as JSON objects in S3 so a reindex never
// has to refetch the original pages.
type Archive struct {
	client *s3.Client
	bucket string
}

// NewArchive creates an S3-backed archive using the default AWS
// configuration chain, with optional overrides from ArchiveConfig.
func NewArchive(ctx context.Context, cfg ArchiveConfig) (*Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Archive{client: c, bucket: cfg.Bucket}, nil
}

// ArchiveKey returns the object key for an article.
func ArchiveKey(article *types.Article) string {
	return fmt.Sprintf("articles/%s/%s.json", article.PublishedAt.Format("2006/01/02"), article.ID)
}

// Store uploads the article as a JSON object. Existing objects are
// overwritten, which keeps re-runs of the same feed idempotent.
func (a *Archive) Store(ctx context.Context, article *types.Article) error {
	body, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("marshal article %s: %w", article.ID, err)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(ArchiveKey(article)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload article %s: %w", article.ID, err)
	}
	return nil
}

// Exists returns true if the article was already archived; false on a
// 404/NotFound response from HeadObject.
func (a *Archive) Exists(ctx context.Context, article *types.Article) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(ArchiveKey(article)),
	})
	if err == nil {
		return true, nil
	}

	var respErr *http.ResponseError
	if errors.As(err, &respErr) {
		if respErr.HTTPStatusCode() == 404 {
			return false, nil
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}
	}

	return false, err
}
