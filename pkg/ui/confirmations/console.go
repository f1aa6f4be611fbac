// Package confirmations provides console implementations of the yes/no
// questions hearth asks the invoking user.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hearth/pkg/errors"
)

// RedownloadQuestion is asked before replacing an existing checkout.
const RedownloadQuestion = "Directory exists, redownload? (y/n): "

// ConsolePrompter implements types.Prompter on a line-oriented console.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter reading answers from in and writing
// questions to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm prints question and reads one line. Only "y" (any case) is an
// affirmative answer; an empty answer or end of input means no.
func (p *ConsolePrompter) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
	}

	response, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}
	if err == io.EOF && response == "" {
		fmt.Fprintln(p.out)
	}

	return strings.ToLower(strings.TrimSpace(response)) == "y", nil
}
