package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"movie-booking-client/internal/session"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var (
	hint   = color.New(color.Faint)
	prompt = color.New(color.FgCyan, color.Bold)
)

// errUsage marks a command line that could not be turned into a page request
var errUsage = errors.New("usage")

// navigation is one page request issued against the router
type navigation struct {
	method string
	path   string
	query  url.Values
	form   url.Values
}

func get(path string, query url.Values) *navigation {
	return &navigation{method: http.MethodGet, path: path, query: query}
}

func post(path string, form url.Values) *navigation {
	return &navigation{method: http.MethodPost, path: path, form: form}
}

// CLI turns commands into page requests and prints the pages.
type CLI struct {
	router  http.Handler
	session *session.Session
	console *Console
	out     io.Writer
	errOut  io.Writer
	log     *zap.Logger
}

func NewCLI(router http.Handler, sess *session.Session, console *Console, out, errOut io.Writer, log *zap.Logger) *CLI {
	return &CLI{
		router:  router,
		session: sess,
		console: console,
		out:     out,
		errOut:  errOut,
		log:     log.With(zap.String("component", "cli")),
	}
}

// Run executes one command line and returns the process exit code
func (c *CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		args = []string{"home"}
	}

	switch args[0] {
	case "shell":
		return c.Shell(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage())
		return 0
	}

	return c.Execute(ctx, args)
}

// Execute runs a single command
func (c *CLI) Execute(ctx context.Context, args []string) int {
	nav, err := c.build(args)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(c.errOut, strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
			return 2
		}
		fmt.Fprintln(c.errOut, err)
		return 1
	}

	status, err := c.navigate(ctx, nav, true)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 1
	}
	if status >= http.StatusBadRequest {
		return 1
	}
	return 0
}

// Shell reads commands line by line until exit or end of input
func (c *CLI) Shell(ctx context.Context) int {
	fmt.Fprintln(c.out, "moviebook shell, type help for commands and exit to leave")

	for ctx.Err() == nil {
		line, err := c.console.ReadLine(c.prompt())
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.log.Warn("Failed to read command", zap.Error(err))
			}
			fmt.Fprintln(c.out)
			return 0
		}

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(c.errOut, err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return 0
		case "shell":
			continue
		case "help":
			fmt.Fprint(c.out, usage())
			continue
		}
		c.Execute(ctx, args)
	}
	return 0
}

func (c *CLI) prompt() string {
	if user := c.session.User(); user != nil {
		return prompt.Sprintf("moviebook (%s)> ", user.Name)
	}
	return prompt.Sprint("moviebook> ")
}

// navigate serves nav through the router. A 303 after a POST is followed
// once, the way a browser lands on the next page.
func (c *CLI) navigate(ctx context.Context, nav *navigation, follow bool) (int, error) {
	target := nav.path
	if len(nav.query) > 0 {
		target += "?" + nav.query.Encode()
	}

	var body io.Reader
	if nav.form != nil {
		body = strings.NewReader(nav.form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, nav.method, target, body)
	if err != nil {
		return 0, fmt.Errorf("build page request: %w", err)
	}
	if nav.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	w := newTerminalWriter(c.out)
	c.router.ServeHTTP(w, req)

	status := w.Status()
	location := w.Header().Get("Location")
	c.log.Debug("Page served",
		zap.String("method", nav.method),
		zap.String("path", target),
		zap.Int("status", status),
		zap.String("location", location),
	)

	if location == "" {
		return status, nil
	}
	if status == http.StatusSeeOther && nav.method != http.MethodGet && follow {
		hint.Fprintf(c.out, "→ %s\n", location)
		return c.navigate(ctx, get(location, nil), false)
	}
	hint.Fprintf(c.out, "→ %s\n", commandFor(location))
	return status, nil
}

// commandFor names the command that opens a page the user was sent to
func commandFor(location string) string {
	switch location {
	case "/login":
		return "login"
	case "/":
		return "home"
	case "/my-bookings":
		return "bookings"
	}
	return "go " + location
}

// terminalWriter is the http.ResponseWriter pages are written into
type terminalWriter struct {
	header http.Header
	out    io.Writer
	status int
}

func newTerminalWriter(out io.Writer) *terminalWriter {
	return &terminalWriter{header: make(http.Header), out: out}
}

func (w *terminalWriter) Header() http.Header {
	return w.header
}

func (w *terminalWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
}

func (w *terminalWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	return w.out.Write(b)
}

func (w *terminalWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// splitArgs splits a shell line on spaces, keeping quoted parts together
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
