// Package identity provides AWS credentials federated through a Cognito identity
// pool, for unauthenticated (guest) identities.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
)

// ProviderSource is the Source reported on retrieved credentials
const ProviderSource = "CognitoIdentityCredentials"

// ErrNoCredentials is returned when the identity pool hands out no credentials
var ErrNoCredentials = errors.New("identity pool returned no credentials")

// API is the subset of the Cognito Identity client used by Provider
type API interface {
	GetId(ctx context.Context, params *cognitoidentity.GetIdInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.GetIdOutput, error)
	GetCredentialsForIdentity(ctx context.Context, params *cognitoidentity.GetCredentialsForIdentityInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.GetCredentialsForIdentityOutput, error)
}

// Provider exchanges an identity pool id for temporary credentials.
// The identity id is resolved once and reused for later refreshes.
type Provider struct {
	api    API
	poolID string

	mu         sync.Mutex
	identityID string
}

// NewProvider creates a provider over an existing Cognito Identity client
func NewProvider(api API, poolID string) *Provider {
	return &Provider{api: api, poolID: poolID}
}

// New builds a cached credentials provider for the identity pool in region
func New(ctx context.Context, region, poolID string) (aws.CredentialsProvider, error) {
	if poolID == "" {
		return nil, fmt.Errorf("identity pool id is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load cognito config: %w", err)
	}

	client := cognitoidentity.NewFromConfig(cfg)
	return aws.NewCredentialsCache(NewProvider(client, poolID)), nil
}

// IdentityID returns the resolved identity id, empty until the first Retrieve
func (p *Provider) IdentityID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.identityID
}

// Retrieve implements aws.CredentialsProvider
func (p *Provider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	identityID, err := p.resolveIdentity(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}

	out, err := p.api.GetCredentialsForIdentity(ctx, &cognitoidentity.GetCredentialsForIdentityInput{
		IdentityId: aws.String(identityID),
	})
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("failed to get credentials for identity %s: %w", identityID, err)
	}

	if out.Credentials == nil || out.Credentials.AccessKeyId == nil || out.Credentials.SecretKey == nil {
		return aws.Credentials{}, ErrNoCredentials
	}

	creds := aws.Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
		Source:          ProviderSource,
	}
	if out.Credentials.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *out.Credentials.Expiration
	}

	return creds, nil
}

func (p *Provider) resolveIdentity(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.identityID != "" {
		return p.identityID, nil
	}

	out, err := p.api.GetId(ctx, &cognitoidentity.GetIdInput{
		IdentityPoolId: aws.String(p.poolID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get identity from pool %s: %w", p.poolID, err)
	}
	if out.IdentityId == nil || *out.IdentityId == "" {
		return "", fmt.Errorf("identity pool %s returned an empty identity id", p.poolID)
	}

	p.identityID = *out.IdentityId
	return p.identityID, nil
}
