package provider

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spf13/viper"
)

/*
OpenAIProvider is a Generator backed by the OpenAI chat completions API.
*/
type OpenAIProvider struct {
	client openai.Client
	model  string
}

type OpenAIProviderOption func(*OpenAIProvider)

func NewOpenAIProvider(options ...OpenAIProviderOption) *OpenAIProvider {
	prvdr := &OpenAIProvider{
		client: openai.NewClient(
			option.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
		),
		model: viper.GetString("provider.openai.model"),
	}

	for _, option := range options {
		option(prvdr)
	}

	if prvdr.model == "" {
		prvdr.model = openai.ChatModelGPT4o
	}

	return prvdr
}

func WithModel(model string) OpenAIProviderOption {
	return func(prvdr *OpenAIProvider) {
		prvdr.model = model
	}
}

func WithClient(client openai.Client) OpenAIProviderOption {
	return func(prvdr *OpenAIProvider) {
		prvdr.client = client
	}
}

func (prvdr *OpenAIProvider) Generate(
	ctx context.Context, system string, prompt string,
) (string, error) {
	completion, err := prvdr.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(prvdr.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		log.Error("generation call failed", "error", err)
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
