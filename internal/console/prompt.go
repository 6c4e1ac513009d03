package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMsgNotANumber is printed before re-prompting for a number.
const ErrMsgNotANumber = "Invalid input. Please enter a number."

// Prompter reads line-oriented answers from in, writing prompts to out.
// Every method returns io.EOF once input is exhausted.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints prompt and returns the next line with surrounding space
// trimmed. A final line without a newline still counts.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// Word prints prompt and returns the first whitespace-separated token of
// the next non-blank line.
func (p *Prompter) Word(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

// Int prompts until the answer parses as an integer. Blank lines are
// skipped without a message.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		token, err := p.Word(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(token)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, ErrMsgNotANumber)
	}
}

// Decimal prompts until the answer parses as a decimal amount.
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, error) {
	for {
		token, err := p.Word(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(token)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, ErrMsgNotANumber)
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
