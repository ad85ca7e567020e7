package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"movie-booking-client/internal/data/entity"
	"movie-booking-client/internal/dto/response"
	"movie-booking-client/internal/usecase"

	"github.com/charmbracelet/lipgloss"
)

// ==================== MOVIES ====================

func MovieTable(w io.Writer, heading string, movies []response.MovieResponse) {
	fmt.Fprintln(w, title(heading))
	if len(movies) == 0 {
		fmt.Fprintln(w, subtle("No movies available"))
		return
	}

	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{strconv.Itoa(m.ID), m.Title, m.Genre, truncate(m.Description, 48)})
	}
	fmt.Fprintln(w, Table([]string{"ID", "Title", "Genre", "Description"}, rows))
}

func Home(w io.Writer, movies []response.MovieResponse) {
	fmt.Fprintln(w, title("Welcome to Movie Booking"))
	fmt.Fprintln(w, subtle("Book your favorite movies with ease"))
	fmt.Fprintln(w)
	MovieTable(w, "Featured Movies", movies)
	fmt.Fprintln(w, subtle("movies: full list   movie <id>: details"))
}

func MoviePage(w io.Writer, page *response.Page[response.MovieResponse]) {
	MovieTable(w, "All Movies", page.Content)
	fmt.Fprintln(w, subtle(fmt.Sprintf("page %d of %d, %d movies", page.Number+1, page.TotalPages, page.TotalElements)))
}

func MovieDetail(w io.Writer, detail *usecase.MovieDetail) {
	if detail.Movie == nil {
		fmt.Fprintln(w, subtle("Movie not found"))
		return
	}

	m := detail.Movie
	card := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.UnsetMarginBottom().Render(m.Title),
		subtle(m.Genre),
		"",
		lipgloss.NewStyle().Width(72).Render(m.Description),
		"",
		subtle("Poster: "+m.PosterURL),
	)
	fmt.Fprintln(w, cardStyle.Render(card))
	fmt.Fprintln(w)
	ShowtimeTable(w, "Upcoming Showtimes", detail.Showtimes)
}

// ==================== SHOWTIMES ====================

func ShowtimeTable(w io.Writer, heading string, showtimes []response.ShowtimeResponse) {
	fmt.Fprintln(w, title(heading))
	if len(showtimes) == 0 {
		fmt.Fprintln(w, subtle("No upcoming showtimes available"))
		return
	}

	rows := make([][]string, 0, len(showtimes))
	for _, st := range showtimes {
		rows = append(rows, []string{
			strconv.Itoa(st.ID),
			st.MovieTitle,
			formatTime(st.StartTime.Time),
			formatTime(st.EndTime.Time),
			fmt.Sprintf("%d / %d", st.AvailableSeats, st.TotalSeats),
		})
	}
	fmt.Fprintln(w, Table([]string{"ID", "Movie", "Starts", "Ends", "Available"}, rows))
	fmt.Fprintln(w, subtle("book <showtime id> <seat>...   seats <showtime id>"))
}

func MovieShowtimes(w io.Writer, page *usecase.MovieShowtimes) {
	heading := "Showtimes"
	if page.Movie != nil {
		heading = "Showtimes for " + page.Movie.Title
	}
	if page.Date != nil {
		heading += " on " + page.Date.Format("Mon, 02 Jan 2006")
	}
	ShowtimeTable(w, heading, page.Showtimes)
}

// ==================== BOOKING ====================

// SeatMap draws the seats row by row; booked seats are struck out and
// selected ones highlighted.
func SeatMap(w io.Writer, seatMap *usecase.SeatMap, selection *usecase.SeatSelection) {
	if seatMap.Showtime != nil {
		fmt.Fprintln(w, title(seatMap.Showtime.MovieTitle))
		fmt.Fprintln(w, subtle(formatTime(seatMap.Showtime.StartTime.Time)))
		fmt.Fprintln(w)
	}
	if len(seatMap.Rows) == 0 {
		fmt.Fprintln(w, subtle("No seats available"))
		return
	}

	fmt.Fprintln(w, SeatGrid(seatMap.Rows, selection, ""))
	fmt.Fprintln(w)
	fmt.Fprintln(w, Legend())
	fmt.Fprintf(w, "%d of %d seats available, %s per seat\n", seatMap.Available(), len(seatMap.Seats), formatMoney(float64(seatMap.SeatPrice)))
	if selection != nil {
		fmt.Fprintln(w, Summary(selection))
	}
}

// SeatGrid renders the rows. cursor marks one seat (used by the picker).
func SeatGrid(rows []usecase.SeatRow, selection *usecase.SeatSelection, cursor string) string {
	screen := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("──────── SCREEN ────────")

	lines := []string{screen, ""}
	for _, row := range rows {
		cells := []string{subtle(row.Row + " ")}
		for _, seat := range row.Seats {
			cells = append(cells, seatCell(seat, selection, cursor))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func seatCell(seat response.SeatResponse, selection *usecase.SeatSelection, cursor string) string {
	label := fmt.Sprintf("%-3s", seat.SeatNumber)
	style := successStyle
	switch {
	case seat.IsBooked:
		style = dangerStyle.Strikethrough(true)
	case selection != nil && selection.Contains(seat.SeatNumber):
		style = selectedStyle
	}
	if seat.SeatNumber == cursor {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

func Legend() string {
	return strings.Join([]string{
		successStyle.Render("available"),
		selectedStyle.Render("selected"),
		dangerStyle.Strikethrough(true).Render("booked"),
	}, "  ")
}

func Summary(selection *usecase.SeatSelection) string {
	seats := "none"
	if selection.Count() > 0 {
		seats = strings.Join(selection.Sorted(), ", ")
	}
	return fmt.Sprintf("Selected: %s  Total: %s", seats, formatMoney(float64(selection.Total())))
}

// ==================== RESERVATIONS ====================

func Bookings(w io.Writer, bookings []usecase.BookingView) {
	fmt.Fprintln(w, title("My Bookings"))
	if len(bookings) == 0 {
		fmt.Fprintln(w, subtle("No reservations found"))
		return
	}

	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			b.MovieTitle,
			formatTime(b.ShowtimeStart.Time),
			strings.Join(b.SeatNumbers, ", "),
			formatMoney(b.TotalPrice),
			bookingStatus(b),
		})
	}
	fmt.Fprintln(w, Table([]string{"ID", "Movie", "Showtime", "Seats", "Total", "Status"}, rows))
	fmt.Fprintln(w, subtle("cancel <id> cancels an upcoming reservation"))
}

func bookingStatus(b usecase.BookingView) string {
	switch {
	case b.IsCancelled:
		return dangerStyle.Render("Cancelled")
	case b.Upcoming:
		return successStyle.Render("Upcoming")
	default:
		return subtle("Past")
	}
}

func Reservations(w io.Writer, page *response.PaginatedResponse[response.ReservationResponse]) {
	fmt.Fprintln(w, title("All Reservations"))
	if len(page.Data) == 0 {
		fmt.Fprintln(w, subtle("No reservations found"))
		return
	}

	rows := make([][]string, 0, len(page.Data))
	for _, r := range page.Data {
		status := "Active"
		if r.IsCancelled {
			status = "Cancelled"
		}
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.UserName,
			r.MovieTitle,
			formatTime(r.ShowtimeStart.Time),
			strings.Join(r.SeatNumbers, ", "),
			formatMoney(r.TotalPrice),
			status,
		})
	}
	fmt.Fprintln(w, Table([]string{"ID", "User", "Movie", "Showtime", "Seats", "Total", "Status"}, rows))
	p := page.Pagination
	fmt.Fprintln(w, subtle(fmt.Sprintf("page %d of %d, %d reservations", p.Page, p.TotalPages, p.Total)))
}

// ==================== ADMIN ====================

func Dashboard(w io.Writer, dashboard *usecase.Dashboard) {
	fmt.Fprintln(w, title("Admin Dashboard"))

	cards := make([]string, 0, len(dashboard.Links))
	for _, link := range dashboard.Links {
		cards = append(cards, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(link.Title),
			subtle(link.Description),
			link.Path,
		)))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if dashboard.Report != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, title("Quick Stats"))
		reportTotals(w, dashboard.Report)
	}
}

func Report(w io.Writer, report *response.ReportResponse) {
	fmt.Fprintln(w, title("Reports"))
	reportTotals(w, report)
	fmt.Fprintln(w)

	fmt.Fprintln(w, title("Revenue by Movie"))
	revenueRows := make([][]string, 0, len(report.MovieRevenues))
	for _, m := range report.MovieRevenues {
		revenueRows = append(revenueRows, []string{m.MovieTitle, strconv.FormatInt(m.ReservationCount, 10), formatMoney(m.Revenue)})
	}
	fmt.Fprintln(w, Table([]string{"Movie", "Reservations", "Revenue"}, revenueRows))
	fmt.Fprintln(w)

	fmt.Fprintln(w, title("Showtime Occupancy"))
	occupancyRows := make([][]string, 0, len(report.ShowtimeOccupancies))
	for _, s := range report.ShowtimeOccupancies {
		occupancyRows = append(occupancyRows, []string{
			strconv.Itoa(s.ShowtimeID),
			s.MovieTitle,
			fmt.Sprintf("%d / %d", s.BookedSeats, s.TotalSeats),
			occupancyBar(s.OccupancyPercentage),
		})
	}
	fmt.Fprintln(w, Table([]string{"Showtime", "Movie", "Booked", "Occupancy"}, occupancyRows))
}

func reportTotals(w io.Writer, report *response.ReportResponse) {
	fmt.Fprintf(w, "Total Reservations: %d\n", report.TotalReservations)
	fmt.Fprintf(w, "Total Revenue: %s\n", formatMoney(report.TotalRevenue))
}

func occupancyBar(percent float64) string {
	const width = 20
	filled := int(percent / 100 * width)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return successStyle.Render(strings.Repeat("█", filled)) +
		subtle(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %.1f%%", percent)
}

func AdminMovies(w io.Writer, movies []response.MovieResponse) {
	MovieTable(w, "Manage Movies", movies)
	fmt.Fprintln(w, subtle("admin movies add | edit <id> | delete <id>"))
}

func AdminShowtimes(w io.Writer, showtimes []response.ShowtimeResponse) {
	ShowtimeTable(w, "Manage Showtimes", showtimes)
	fmt.Fprintln(w, subtle("admin showtimes add | edit <id> | delete <id>"))
}

// ==================== SESSION ====================

func WhoAmI(w io.Writer, user *entity.User) {
	if user == nil {
		fmt.Fprintln(w, subtle("Not logged in"))
		return
	}
	role := "user"
	if user.IsAdmin() {
		role = "admin"
	}
	fmt.Fprintf(w, "%s <%s> (%s)\n", user.Name, user.Email, role)
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// Nav is the navigation bar for the current session.
type Nav struct {
	User  *entity.User `json:"user" yaml:"user"`
	Items []NavItem    `json:"items" yaml:"items"`
}

func NewNav(user *entity.User) Nav {
	items := []NavItem{{Label: "Home", Path: "/"}, {Label: "Movies", Path: "/movies"}}
	if user == nil {
		items = append(items, NavItem{Label: "Login", Path: "/login"}, NavItem{Label: "Register", Path: "/register"})
		return Nav{Items: items}
	}

	items = append(items, NavItem{Label: "My Bookings", Path: "/my-bookings"})
	if user.IsAdmin() {
		items = append(items, NavItem{Label: "Admin", Path: "/admin/dashboard"})
	}
	items = append(items, NavItem{Label: "Logout", Path: "/logout"})
	return Nav{User: user, Items: items}
}

func NavBar(w io.Writer, nav Nav) {
	parts := []string{titleStyle.UnsetMarginBottom().Render("MovieBook")}
	for _, item := range nav.Items {
		parts = append(parts, item.Label+subtle(" "+item.Path))
	}
	if nav.User != nil {
		parts = append(parts, subtle("Hello, "+nav.User.Name))
	}
	fmt.Fprintln(w, strings.Join(parts, "  │  "))
}

// FormatTime formats t for display, "-" when unset.
func FormatTime(t time.Time) string {
	return formatTime(t)
}
