package prompt

import "fmt"

// InputParseError is returned when an answer cannot be parsed as the type the
// prompt asked for. It is fatal to the run.
type InputParseError struct {
	Prompt string
	Input  string
	Kind   string
	Err    error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("invalid %s %q for prompt %q: %v", e.Kind, e.Input, e.Prompt, e.Err)
}

func (e *InputParseError) Unwrap() error {
	return e.Err
}
