package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// fail renders an error inline and passes it through so callers in tests
// can still assert on it.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+err.Error()))
	return err
}

// subcommand splits a resource command line into its action and the rest.
// No action defaults to "list".
func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}

// resolveID takes the id from the argument list when present, otherwise
// prompts for it.
func (a *App) resolveID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		raw, err = GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// strPtr returns nil for empty input, so "press Enter to keep" maps to an
// omitted field in a partial update.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// intPtr returns nil for zero input, the "keep current" marker of GetInt.
func intPtr(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// stars renders a 1–5 rating as filled and empty stars.
func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
