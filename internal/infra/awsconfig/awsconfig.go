// Where: cli/internal/infra/awsconfig/awsconfig.go
// What: Shared AWS SDK configuration loading.
// Why: Give the DynamoDB session store and S3 dispatch sink one way to reach AWS or a local emulator.
package awsconfig

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const defaultRegion = "us-east-1"

// Options selects region and endpoint for a client.
type Options struct {
	Region   string
	Endpoint string
}

// Load builds an aws.Config. With a custom endpoint and no AWS credentials in
// the environment, static placeholder credentials are used so local
// emulators accept the requests.
func Load(ctx context.Context, opts Options) (aws.Config, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = defaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if strings.TrimSpace(opts.Endpoint) != "" && os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		creds := credentials.NewStaticCredentialsProvider("dummy", "dummy", "")
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// BaseEndpoint returns the endpoint pointer for client options, or nil for the default.
func BaseEndpoint(endpoint string) *string {
	if strings.TrimSpace(endpoint) == "" {
		return nil
	}
	return aws.String(strings.TrimSpace(endpoint))
}
