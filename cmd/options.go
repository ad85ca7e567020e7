package cmd

import (
	"fmt"
	"io"

	"movie-booking-client/internal/view"
	"movie-booking-client/pkg/utils"

	"github.com/spf13/pflag"
)

// Options are the global flags, given before the command.
type Options struct {
	API     string
	Output  string
	Storage string
	Yes     bool
	Debug   bool
	Args    []string
}

// ParseOptions reads the global flags and leaves the command in Args
func ParseOptions(args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet("moviebook", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.StringVar(&opts.API, "api", "", "backend base URL (default from API_BASE_URL)")
	fs.StringVarP(&opts.Output, "output", "o", "", "output format: table, json or yaml")
	fs.StringVar(&opts.Storage, "storage", "", "session storage: file, memory, redis or postgres")
	fs.BoolVarP(&opts.Yes, "yes", "y", false, "answer yes to every confirmation")
	fs.BoolVar(&opts.Debug, "debug", false, "log to stderr at debug level")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: moviebook [flags] <command> [args]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Flags:")
		fmt.Fprint(stderr, fs.FlagUsages())
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, usage())
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.Output != "" && !view.ValidOutput(opts.Output) {
		return nil, fmt.Errorf("unknown output format %q", opts.Output)
	}

	opts.Args = fs.Args()
	return opts, nil
}

// Apply overrides config values with the flags that were given
func (o *Options) Apply(config *utils.Config) {
	if o.API != "" {
		config.API.BaseURL = o.API
	}
	if o.Output != "" {
		config.App.Output = o.Output
	}
	if o.Storage != "" {
		config.Storage.Driver = o.Storage
	}
	if o.Debug {
		config.App.Debug = true
	}
}
