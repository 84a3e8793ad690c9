// Package prompt asks questions on a text console and parses the answers.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Collector writes a prompt, reads one line and parses it. Every call returns
// its own value; nothing is shared between prompts.
type Collector struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewCollector creates a Collector reading answers from in and writing prompts to out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Line prints prompt and returns the next input line with surrounding
// whitespace removed. End of input yields an empty line.
func (c *Collector) Line(prompt string) (string, error) {
	if _, err := fmt.Fprintln(c.out, prompt); err != nil {
		return "", errors.Wrap(err, "failed to write prompt")
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "failed to read line")
	}
	return strings.TrimSpace(line), nil
}

// Int reads a signed integer.
func (c *Collector) Int(prompt string) (int64, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, parseError(prompt, line, "integer", err)
	}
	return v, nil
}

// Uint64 reads a non-negative integer such as a day count or gas used.
func (c *Collector) Uint64(prompt string) (uint64, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, parseError(prompt, line, "unsigned integer", err)
	}
	return v, nil
}

// Float64 reads a floating point number such as a gas price.
func (c *Collector) Float64(prompt string) (float64, error) {
	line, err := c.Line(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, parseError(prompt, line, "number", err)
	}
	return v, nil
}

func parseError(prompt, input, kind string, err error) *InputParseError {
	return &InputParseError{
		Prompt: strings.TrimSpace(prompt),
		Input:  input,
		Kind:   kind,
		Err:    err,
	}
}
