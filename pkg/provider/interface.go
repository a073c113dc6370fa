package provider

import "context"

/*
Generator is the external generation capability: one prompt in, the full
non-streaming textual result out.  It is invoked exactly once per task and
is assumed to fail only by returning an error.
*/
type Generator interface {
	Generate(ctx context.Context, system string, prompt string) (string, error)
}
