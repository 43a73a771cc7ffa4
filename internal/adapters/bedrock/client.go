package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Client invokes Bedrock models with JSON request and response bodies.
// It is safe for concurrent use.
type Client struct {
	runtime RuntimeAPI
}

// NewClient creates a client over an existing runtime
func NewClient(runtime RuntimeAPI) *Client {
	return &Client{runtime: runtime}
}

// NewClientForRegion loads the default AWS credential chain and creates a
// client bound to region
func NewClientForRegion(ctx context.Context, region string) (*Client, error) {
	if region == "" {
		return nil, fmt.Errorf("bedrock region is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewClient(bedrockruntime.NewFromConfig(awsCfg)), nil
}

// Invoke sends body to modelID and returns the raw response body
func (c *Client) Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String(ContentTypeJSON),
		Accept:      aws.String(ContentTypeJSON),
	})
	if err != nil {
		return nil, NewInvokeError(modelID, err)
	}
	if out == nil {
		return nil, NewInvokeError(modelID, ErrNoOutput)
	}

	return out.Body, nil
}
