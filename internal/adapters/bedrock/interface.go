package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// ContentTypeJSON is used for both the request content type and the accepted response type
const ContentTypeJSON = "application/json"

// RuntimeAPI is the subset of the Bedrock runtime client used here.
// *bedrockruntime.Client satisfies it; tests substitute MockRuntime.
type RuntimeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}
