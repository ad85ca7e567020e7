package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

func usage() string {
	return `Commands:
  home                                  featured movies
  movies [--page N --size N]            all movies
  movie <id>                            movie details
  showtimes <movieId> [--date YYYY-MM-DD]
  seats <showtimeId>                    seat map
  book <showtimeId> <seat>... [-i]      book seats (-i opens the seat picker)
  bookings                              my reservations
  cancel <reservationId>                cancel a reservation
  login [--email E] [--password P]
  register [--name N] [--email E] [--password P]
  logout
  whoami
  nav                                   pages you can open
  admin dashboard|reports
  admin reservations [--page N --per-page N]
  admin movies [add|edit <id>|delete <id>] [--title --description --genre --poster-url]
  admin showtimes [add|edit <id>|delete <id>] [--movie-id --start --end --seats]
  go <path> [--method M] [key=value...] raw page request
  shell                                 interactive shell
`
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageError("%s: %v", fs.Name(), err)
	}
	return nil
}

// idArg reads a positive id argument
func idArg(name string, args []string, i int) (string, error) {
	if len(args) <= i {
		return "", usageError("%s: missing id", name)
	}
	id, err := strconv.Atoi(args[i])
	if err != nil || id <= 0 {
		return "", usageError("%s: invalid id %q", name, args[i])
	}
	return strconv.Itoa(id), nil
}

// build maps a command line onto the page it opens
func (c *CLI) build(args []string) (*navigation, error) {
	name, rest := args[0], args[1:]

	switch name {
	case "home":
		return get("/", nil), nil

	case "movies":
		fs := newFlagSet(name)
		page := fs.Int("page", 0, "page number, from 1")
		size := fs.Int("size", 0, "page size")
		if err := parseFlags(fs, rest); err != nil {
			return nil, err
		}
		query := url.Values{}
		if fs.Changed("page") {
			query.Set("page", strconv.Itoa(*page))
		}
		if fs.Changed("size") {
			query.Set("size", strconv.Itoa(*size))
		}
		return get("/movies", query), nil

	case "movie":
		id, err := idArg(name, rest, 0)
		if err != nil {
			return nil, err
		}
		return get("/movies/"+id, nil), nil

	case "showtimes":
		fs := newFlagSet(name)
		date := fs.String("date", "", "only showtimes on this day (YYYY-MM-DD)")
		if err := parseFlags(fs, rest); err != nil {
			return nil, err
		}
		id, err := idArg(name, fs.Args(), 0)
		if err != nil {
			return nil, err
		}
		query := url.Values{}
		if *date != "" {
			query.Set("date", *date)
		}
		return get("/showtimes/"+id, query), nil

	case "seats":
		id, err := idArg(name, rest, 0)
		if err != nil {
			return nil, err
		}
		return get("/booking/"+id, nil), nil

	case "book":
		fs := newFlagSet(name)
		interactive := fs.BoolP("interactive", "i", false, "pick seats on the seat map")
		if err := parseFlags(fs, rest); err != nil {
			return nil, err
		}
		id, err := idArg(name, fs.Args(), 0)
		if err != nil {
			return nil, err
		}
		seats := fs.Args()[1:]
		if len(seats) == 0 && !*interactive {
			return nil, usageError("book: give seat numbers or -i")
		}
		form := url.Values{"seat": seats}
		if *interactive {
			form.Set("interactive", "true")
		}
		return post("/booking/"+id, form), nil

	case "bookings":
		return get("/my-bookings", nil), nil

	case "cancel":
		id, err := idArg(name, rest, 0)
		if err != nil {
			return nil, err
		}
		return post("/my-bookings/"+id+"/cancel", url.Values{}), nil

	case "login":
		return c.login(rest)

	case "register":
		return c.register(rest)

	case "logout":
		return post("/logout", url.Values{}), nil

	case "whoami":
		return get("/whoami", nil), nil

	case "nav":
		return get("/nav", nil), nil

	case "admin":
		return c.admin(rest)

	case "go":
		return raw(rest)
	}

	return nil, usageError("unknown command %q, run help", name)
}

// ==================== AUTH ====================

func (c *CLI) login(args []string) (*navigation, error) {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	if err := c.ask(email, "Email: ", false); err != nil {
		return nil, err
	}
	if err := c.ask(password, "Password: ", true); err != nil {
		return nil, err
	}

	return post("/login", url.Values{
		"email":    {*email},
		"password": {*password},
	}), nil
}

func (c *CLI) register(args []string) (*navigation, error) {
	fs := newFlagSet("register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}

	if err := c.ask(name, "Name: ", false); err != nil {
		return nil, err
	}
	if err := c.ask(email, "Email: ", false); err != nil {
		return nil, err
	}
	if err := c.ask(password, "Password: ", true); err != nil {
		return nil, err
	}

	return post("/register", url.Values{
		"name":     {*name},
		"email":    {*email},
		"password": {*password},
	}), nil
}

// ask fills value from the console when the flag was left empty
func (c *CLI) ask(value *string, label string, secret bool) error {
	if *value != "" || c.console == nil {
		return nil
	}

	var (
		answer string
		err    error
	)
	if secret {
		answer, err = c.console.ReadPassword(label)
	} else {
		answer, err = c.console.ReadLine(label)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	*value = strings.TrimSpace(answer)
	return nil
}

// ==================== ADMIN ====================

func (c *CLI) admin(args []string) (*navigation, error) {
	if len(args) == 0 {
		return get("/admin/dashboard", nil), nil
	}

	area, rest := args[0], args[1:]
	switch area {
	case "dashboard":
		return get("/admin/dashboard", nil), nil

	case "reports":
		return get("/admin/reports", nil), nil

	case "reservations":
		fs := newFlagSet("admin reservations")
		page := fs.Int("page", 1, "page number")
		perPage := fs.Int("per-page", 20, "reservations per page")
		if err := parseFlags(fs, rest); err != nil {
			return nil, err
		}
		return get("/admin/reservations", url.Values{
			"page":     {strconv.Itoa(*page)},
			"per_page": {strconv.Itoa(*perPage)},
		}), nil

	case "movies":
		return crud("/admin/movies", rest, movieFields)

	case "showtimes":
		return crud("/admin/showtimes", rest, showtimeFields)
	}

	return nil, usageError("admin: unknown page %q", area)
}

// formField maps a command flag onto a form key
type formField struct {
	flag  string
	key   string
	usage string
}

var movieFields = []formField{
	{flag: "title", key: "title", usage: "movie title"},
	{flag: "description", key: "description", usage: "movie description"},
	{flag: "genre", key: "genre", usage: "genre"},
	{flag: "poster-url", key: "posterUrl", usage: "poster image URL"},
}

var showtimeFields = []formField{
	{flag: "movie-id", key: "movieId", usage: "movie id"},
	{flag: "start", key: "startTime", usage: "start, YYYY-MM-DDTHH:MM"},
	{flag: "end", key: "endTime", usage: "end, YYYY-MM-DDTHH:MM"},
	{flag: "seats", key: "totalSeats", usage: "number of seats"},
}

// crud builds list/add/edit/delete requests of an admin page. Edit only
// sends the fields that were given.
func crud(base string, args []string, fields []formField) (*navigation, error) {
	if len(args) == 0 || args[0] == "list" {
		return get(base, nil), nil
	}

	action, rest := args[0], args[1:]
	name := strings.TrimPrefix(base, "/") + " " + action

	switch action {
	case "delete":
		id, err := idArg(name, rest, 0)
		if err != nil {
			return nil, err
		}
		return &navigation{method: http.MethodDelete, path: base + "/" + id}, nil

	case "add", "edit":
		fs := newFlagSet(name)
		values := make(map[string]*string, len(fields))
		for _, field := range fields {
			values[field.flag] = fs.String(field.flag, "", field.usage)
		}
		if err := parseFlags(fs, rest); err != nil {
			return nil, err
		}

		form := url.Values{}
		for _, field := range fields {
			if action == "add" || fs.Changed(field.flag) {
				form.Set(field.key, *values[field.flag])
			}
		}

		if action == "add" {
			return post(base, form), nil
		}
		id, err := idArg(name, fs.Args(), 0)
		if err != nil {
			return nil, err
		}
		return &navigation{method: http.MethodPut, path: base + "/" + id, form: form}, nil
	}

	return nil, usageError("%s: unknown action %q", strings.TrimPrefix(base, "/"), action)
}

// ==================== RAW ====================

// raw handles go <path> [--method M] [key=value...]
func raw(args []string) (*navigation, error) {
	fs := newFlagSet("go")
	method := fs.StringP("method", "X", http.MethodGet, "request method")
	if err := parseFlags(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 || !strings.HasPrefix(fs.Arg(0), "/") {
		return nil, usageError("go: give a path starting with /")
	}

	nav := &navigation{method: strings.ToUpper(*method), path: fs.Arg(0)}
	if parsed, err := url.Parse(nav.path); err == nil && parsed.RawQuery != "" {
		nav.path = parsed.Path
		nav.query = parsed.Query()
	}

	if fs.NArg() == 1 {
		return nav, nil
	}

	values := url.Values{}
	for _, pair := range fs.Args()[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, usageError("go: %q is not key=value", pair)
		}
		values.Add(key, value)
	}

	// GET pages read the query, the others read the form
	if nav.method == http.MethodGet {
		if nav.query == nil {
			nav.query = url.Values{}
		}
		for key, list := range values {
			nav.query[key] = append(nav.query[key], list...)
		}
		return nav, nil
	}
	nav.form = values
	return nav, nil
}
