package main

import (
	"context"

	"prompt-relay-api/internal/config"
	"prompt-relay-api/internal/handlers"
	"prompt-relay-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var promptHandler *handlers.PromptHandler

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	cfg.ConfigureLogging()

	manager := lambda.GetConnectionManager()
	if err := manager.Initialize(context.Background(), cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	container, err := manager.GetContainer(context.Background())
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	promptHandler = handlers.NewPromptHandler(container.PromptService)

	serverless := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function_name": serverless.FunctionName,
		"region":        cfg.Bedrock.Region,
		"model_id":      cfg.Bedrock.ModelID,
	}).Info("Prompt function initialized")
}

func main() {
	awslambda.Start(promptHandler.HandleEvent)
}
