package extract

import (
	"context"
	"fmt"
	"strings"

	"bakeshop/internal/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const itemPrompt = `You are a data entry assistant for a bakery's bookkeeping system.
Extract the purchased line items from the receipt text below.
Output one line per item in exactly this format, with no other text:

Name: Size: Price

Name is the ingredient or product name, Size is the package size as
printed (may be empty), Price is the line price as a plain number with
no currency symbol. Skip subtotals, tax and payment lines.

Receipt text:
%s`

// Completer generates one completion for a prompt. It is the seam
// between the extractor and the configured LLM backend.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Extractor turns free-form receipt text into structured line items
// using an LLM, so operators can paste a whole receipt instead of
// retyping it line by line. The model is asked for the same
// "Name: Size: Price" shape manual entry uses, and its output goes
// through the same line parser.
type Extractor struct {
	completer Completer
}

// New creates an extractor on a configured completion backend
func New(c Completer) *Extractor {
	return &Extractor{completer: c}
}

// llmCompleter adapts a langchaingo model to the Completer seam
type llmCompleter struct {
	llm llms.LLM
}

func (l llmCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, l.llm, prompt)
}

// NewOpenAI creates an extractor backed by an OpenAI model
func NewOpenAI(apiKey, model string) (*Extractor, error) {
	if model == "" {
		model = "gpt-4o-mini"
	}
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return New(llmCompleter{llm: llm}), nil
}

// Extract parses receipt text into line items. Items the model emits
// without a name or price are dropped; an empty result is not an error,
// since the operator can always fall back to manual entry.
func (e *Extractor) Extract(ctx context.Context, text string) ([]models.ReceiptItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	completion, err := e.completer.Complete(ctx, fmt.Sprintf(itemPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	var items []models.ReceiptItem
	for _, item := range models.ParseItemLines(completion) {
		if item.Name == "" || item.Price == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
