// Where: cli/internal/infra/session/dynamo.go
// What: Session provider backed by a DynamoDB sessions table.
// Why: Resolve tokens issued by a shared build service.
package session

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	domain "github.com/poruru/appbuild/cli/internal/domain/session"
	"github.com/poruru/appbuild/cli/internal/meta"
)

// DynamoAPI is the subset of the DynamoDB client used for session lookups.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// DynamoProvider looks the session token up in Table.
type DynamoProvider struct {
	Client      DynamoAPI
	Table       string
	SessionPath string
	Now         func() time.Time
}

// CurrentUser resolves the token from $APPBUILD_TOKEN or the session file
// and maps the matching item to a user.
func (p DynamoProvider) CurrentUser(ctx context.Context) (*domain.User, error) {
	token, err := p.token()
	if err != nil {
		return nil, err
	}

	out, err := p.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(p.Table),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return nil, ErrNotLoggedIn
	}

	if raw := numberAttr(out.Item, "expires_at"); raw != "" {
		expires, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode session expiry: %w", err)
		}
		if !time.Unix(expires, 0).After(now(p.Now)) {
			return nil, ErrSessionExpired
		}
	}

	user := &domain.User{
		ID:             stringAttr(out.Item, "user_id"),
		Username:       stringAttr(out.Item, "username"),
		PrimaryAccount: stringAttr(out.Item, "primary_account"),
	}
	if user.Username == "" {
		return nil, ErrNotLoggedIn
	}
	return user, nil
}

func (p DynamoProvider) token() (string, error) {
	if token := strings.TrimSpace(os.Getenv(meta.EnvToken)); token != "" {
		return token, nil
	}
	stored, err := ReadSessionFile(p.SessionPath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(stored.Token) == "" {
		return "", ErrNotLoggedIn
	}
	return stored.Token, nil
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func numberAttr(item map[string]types.AttributeValue, key string) string {
	if v, ok := item[key].(*types.AttributeValueMemberN); ok {
		return v.Value
	}
	return ""
}
