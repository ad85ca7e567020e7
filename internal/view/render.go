// Package view renders pages as lipgloss tables, JSON or YAML.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"movie-booking-client/pkg/utils"

	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DisplayTimeLayout is how dates are shown in tables.
const DisplayTimeLayout = "Mon, 02 Jan 2006 15:04"

// ValidOutput reports whether format is a known output format.
func ValidOutput(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Render writes data in the format picked for this request. table draws
// the human form and is only called for table output.
func Render(w http.ResponseWriter, r *http.Request, code int, data any, table func(io.Writer)) {
	switch utils.GetOutputFromContext(r.Context()) {
	case OutputJSON:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(w, "failed to encode page: %v\n", err)
		}
	case OutputYAML:
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(code)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(w, "failed to encode page: %v\n", err)
		}
		enc.Close()
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(code)
		if table != nil {
			table(w)
		}
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DisplayTimeLayout)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}
