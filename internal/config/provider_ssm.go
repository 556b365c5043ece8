package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"

	"avnotify/internal/types"
)

// ssmClient is the subset of the SSM SDK client used by SSMProvider.
// It matches ssm.GetParametersByPathAPIClient so it can drive the paginator.
type ssmClient interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

// SSMProvider implements ParameterStore on top of AWS Systems Manager
// Parameter Store. It is the provider for every non-local environment.
//
// Parameters are read with GetParametersByPath (Recursive=false,
// WithDecryption=true). All result pages are followed, so the returned map
// covers exactly the parameters directly under the path at query time.
type SSMProvider struct {
	// region is the AWS region where SSM parameters are stored.
	region string

	// endpointURL overrides the SSM endpoint (LocalStack). Empty in prod.
	endpointURL string

	// client is the SSM API client. If nil, a new client is created
	// lazily using the configured region.
	client ssmClient

	logger types.Logger
}

// NewSSMProvider creates a new SSMProvider for the given region. The SDK
// client is built on first use.
func NewSSMProvider(region, endpointURL string, logger types.Logger) *SSMProvider {
	return &SSMProvider{
		region:      region,
		endpointURL: endpointURL,
		logger:      logger,
	}
}

// newSSMProviderWithClient creates a new SSMProvider with an injected SSM client.
// This constructor is used for testing with a mock client.
func newSSMProviderWithClient(client ssmClient, logger types.Logger) *SSMProvider {
	return &SSMProvider{
		region: "us-east-1",
		client: client,
		logger: logger,
	}
}

// ensureClient initializes the SSM client if it has not been created yet.
func (p *SSMProvider) ensureClient(ctx context.Context) error {
	if p.client != nil {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(p.region),
	)
	if err != nil {
		return fmt.Errorf("loading AWS config for SSM (region=%s): %w", p.region, err)
	}

	p.client = ssm.NewFromConfig(cfg, func(o *ssm.Options) {
		if p.endpointURL != "" {
			o.BaseEndpoint = aws.String(p.endpointURL)
		}
	})
	return nil
}

// GetParametersByPath fetches every parameter directly under path.
//
// Any failure (client construction, network, permissions, missing path) is
// logged and folded into the result: Status is FetchFailed when nothing was
// read, FetchPartial when earlier pages had already been collected. The
// values gathered before the failure are always returned.
func (p *SSMProvider) GetParametersByPath(ctx context.Context, path string) Parameters {
	result := Parameters{
		Values: make(map[string]string),
		Status: FetchComplete,
	}

	if err := p.ensureClient(ctx); err != nil {
		return p.fail(result, path, err)
	}

	paginator := ssm.NewGetParametersByPathPaginator(p.client, &ssm.GetParametersByPathInput{
		Path:           aws.String(path),
		Recursive:      aws.Bool(false),
		WithDecryption: aws.Bool(true),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return p.fail(result, path, err)
		}

		for _, param := range page.Parameters {
			name := aws.ToString(param.Name)
			if name == "" {
				continue
			}
			result.Values[parameterKey(name)] = aws.ToString(param.Value)
		}
	}

	p.logger.Info("loaded parameters from SSM",
		"path", path,
		"count", len(result.Values),
	)

	return result
}

// fail records err on result and logs it. Parameter values are never logged.
func (p *SSMProvider) fail(result Parameters, path string, err error) Parameters {
	result.Err = err
	if len(result.Values) == 0 {
		result.Status = FetchFailed
	} else {
		result.Status = FetchPartial
	}

	args := []any{
		"path", path,
		"status", string(result.Status),
		"loaded", len(result.Values),
		"error", err.Error(),
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		args = append(args, "error_code", apiErr.ErrorCode())
	}
	p.logger.Error("encountered an error loading config from SSM", args...)

	return result
}

// parameterKey returns the final path segment of a hierarchical parameter
// name: "/dev/digitized_av_trigger/TEAMS_URL" -> "TEAMS_URL".
func parameterKey(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}
