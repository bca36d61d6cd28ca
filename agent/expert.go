package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	Log         *zap.Logger
	chat        *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Started reports whether Start succeeded.
func (e *Expert) Started() bool { return e.chat != nil }

func (e *Expert) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callbacks.
//
// Function calls are resolved through the Library and sent back until the
// model answers with text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	content := resp.Candidates[0].Content

	var calls []*genai.Part
	for _, p := range content.Parts {
		if p.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		e.logger().Debug("function call", zap.String("expert", e.Name), zap.String("function", p.FunctionCall.Name), zap.Any("args", p.FunctionCall.Args))
		// errors are reported to the model in the response itself.
		calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, p.FunctionCall)})
	}
	if len(calls) > 0 {
		return e.Ask(ctx, calls...)
	}
	return content, nil
}

// AskText sends a question and returns the text of the answer.
func (e *Expert) AskText(ctx context.Context, question string) (string, error) {
	content, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	return Text(content), nil
}

// Text concatenates the text parts of a content.
func Text(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Parts {
		if p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// Declaration returns the function declaration to ask this expert.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call perform the call of asking this expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	d := e.Declaration()

	arg0 := args[d.Parameters.Required[0]]
	question, ok := arg0.(string)
	if !ok {
		return errorResponse(id, d.Name, fmt.Errorf("invalid type got %T, expected string", arg0))
	}

	r, err := e.AskText(ctx, question)
	if err != nil {
		return errorResponse(id, d.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}
	e.logger().Debug("expert answered", zap.String("expert", e.Name), zap.String("question", question), zap.String("answer", r))
	return outputResponse(id, d.Name, r)
}
