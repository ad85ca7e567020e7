package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console reads answers from the user. Passwords are read without echo
// when the input is a terminal.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	fd        int
	AssumeYes bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// ReadLine prints prompt and returns the next line without its newline.
// io.EOF is only returned when nothing was typed.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ReadPassword(prompt string) (string, error) {
	if c.fd < 0 {
		return c.ReadLine(prompt)
	}

	fmt.Fprint(c.out, prompt)
	password, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// Confirm implements usecase.Confirmer with a y/N question
func (c *Console) Confirm(ctx context.Context, prompt string) bool {
	if c.AssumeYes {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	answer, err := c.ReadLine(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
