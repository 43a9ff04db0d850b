// Where: cli/internal/infra/session/provider.go
// What: Session provider selection.
// Why: Pick the configured session backend at startup.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	domain "github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/infra/awsconfig"
	"github.com/poruru/appbuild/cli/internal/infra/config"
)

// Provider returns the user behind the current session.
type Provider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// NewProvider builds the provider named by cfg.Backend.
func NewProvider(ctx context.Context, cfg config.SessionConfig, sessionPath string) (Provider, error) {
	switch strings.TrimSpace(cfg.Backend) {
	case "", config.SessionBackendFile:
		return FileProvider{Path: sessionPath}, nil
	case config.SessionBackendDynamoDB:
		if strings.TrimSpace(cfg.Table) == "" {
			return nil, fmt.Errorf("session.table is required for the dynamodb backend")
		}
		awsCfg, err := awsconfig.Load(ctx, awsconfig.Options{Region: cfg.Region, Endpoint: cfg.Endpoint})
		if err != nil {
			return nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg, func(options *dynamodb.Options) {
			options.BaseEndpoint = awsconfig.BaseEndpoint(cfg.Endpoint)
		})
		return DynamoProvider{Client: client, Table: cfg.Table, SessionPath: sessionPath}, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
