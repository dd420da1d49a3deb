package extract

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewGitHubModels creates an extractor backed by the GitHub Models
// endpoint, which speaks the OpenAI API
func NewGitHubModels(token, model string) (*Extractor, error) {
	if token == "" {
		return nil, fmt.Errorf("a GitHub token is required for GitHub Models")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithModel(model),
		openai.WithBaseURL("https://models.inference.ai.azure.com"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub Models client: %w", err)
	}
	return New(llmCompleter{llm: llm}), nil
}

// azureCompleter runs completions against an Azure OpenAI deployment
type azureCompleter struct {
	client         *azopenai.Client
	deploymentName string
}

func (a *azureCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.GetChatCompletions(ctx, azopenai.ChatCompletionsOptions{
		Messages: []azopenai.ChatRequestMessageClassification{
			&azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(prompt),
			},
		},
		DeploymentName: to.Ptr(a.deploymentName),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("Azure OpenAI completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("empty response from Azure OpenAI")
	}
	return *resp.Choices[0].Message.Content, nil
}

// NewAzureOpenAI creates an extractor backed by an Azure OpenAI
// deployment
func NewAzureOpenAI(endpoint, apiKey, deploymentName string) (*Extractor, error) {
	if endpoint == "" || apiKey == "" || deploymentName == "" {
		return nil, fmt.Errorf("Azure OpenAI configuration missing: endpoint, API key and deployment name are all required")
	}

	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure OpenAI client: %w", err)
	}

	return New(&azureCompleter{client: client, deploymentName: deploymentName}), nil
}
