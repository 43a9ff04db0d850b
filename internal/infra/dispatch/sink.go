// Where: cli/internal/infra/dispatch/sink.go
// What: Build request sinks (local directory, S3 bucket).
// Why: Let the same build flow hand off locally or to a shared queue bucket.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/appbuild/cli/internal/infra/awsconfig"
	"github.com/poruru/appbuild/cli/internal/infra/config"
	"github.com/poruru/appbuild/cli/internal/infra/fileops"
	"github.com/poruru/appbuild/cli/internal/meta"
)

// Sink stores a request and returns where it went.
type Sink interface {
	Dispatch(ctx context.Context, req Request) (string, error)
}

func encode(req Request) ([]byte, error) {
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode build request: %w", err)
	}
	return append(payload, '\n'), nil
}

// DirSink writes requests as <Dir>/<id>.json.
type DirSink struct {
	Dir string
}

func (s DirSink) Dispatch(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	payload, err := encode(req)
	if err != nil {
		return "", err
	}
	target := filepath.Join(s.Dir, req.ID+".json")
	if err := fileops.WriteFileAtomic(target, payload, 0o644); err != nil {
		return "", fmt.Errorf("write build request: %w", err)
	}
	return target, nil
}

// S3API is the subset of the S3 client used for dispatch.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads requests to Bucket under Prefix.
type S3Sink struct {
	Client S3API
	Bucket string
	Prefix string
}

func (s S3Sink) Dispatch(ctx context.Context, req Request) (string, error) {
	payload, err := encode(req)
	if err != nil {
		return "", err
	}
	key := path.Join(strings.Trim(s.Prefix, "/"), req.ID+".json")
	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"platform":    string(req.Platform),
			"tracking-id": req.Tracking.TrackingID(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload build request: %w", err)
	}
	return fmt.Sprintf("s3://%s/%s", s.Bucket, key), nil
}

// DefaultDir returns the default request directory for a project.
func DefaultDir(projectDir string) string {
	return filepath.Join(projectDir, meta.HomeDir, meta.RequestsDir)
}

// NewSink builds the sink named by cfg.Backend.
func NewSink(ctx context.Context, cfg config.DispatchConfig, projectDir string) (Sink, error) {
	switch strings.TrimSpace(cfg.Backend) {
	case "", config.DispatchBackendDir:
		dir := strings.TrimSpace(cfg.Dir)
		if dir == "" {
			dir = DefaultDir(projectDir)
		}
		return DirSink{Dir: dir}, nil
	case config.DispatchBackendS3:
		if strings.TrimSpace(cfg.Bucket) == "" {
			return nil, fmt.Errorf("dispatch.bucket is required for the s3 backend")
		}
		awsCfg, err := awsconfig.Load(ctx, awsconfig.Options{Region: cfg.Region, Endpoint: cfg.Endpoint})
		if err != nil {
			return nil, err
		}
		client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
			options.BaseEndpoint = awsconfig.BaseEndpoint(cfg.Endpoint)
			options.UsePathStyle = cfg.Endpoint != ""
		})
		return S3Sink{Client: client, Bucket: cfg.Bucket, Prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unknown dispatch backend %q", cfg.Backend)
	}
}
