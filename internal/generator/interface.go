package generator

import "context"

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to Generator.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var (
	_ Generator = (*Gemini)(nil)
	_ Generator = (*retrying)(nil)
	_ Generator = Func(nil)
)
