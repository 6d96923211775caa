package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const queryDateLayout = "2006-01-02"

// queryTicker returns the ticker filter, accepting both ?company and ?ticker.
func queryTicker(c echo.Context) string {
	if sym := c.QueryParam("company"); sym != "" {
		return sym
	}
	return c.QueryParam("ticker")
}

// queryLimit returns the limit filter. Invalid or non-positive values are
// ignored.
func queryLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// queryDateRange parses the ?start and ?end date filters. Start is an
// inclusive lower bound at UTC midnight. End is advanced one day past the
// parsed date so callers can apply it as an exclusive upper bound, which
// keeps the whole end date in range.
func queryDateRange(c echo.Context) (start, end *time.Time, err error) {
	if raw := c.QueryParam("start"); raw != "" {
		t, perr := time.Parse(queryDateLayout, raw)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid start date %q, want YYYY-MM-DD", raw)
		}
		start = &t
	}
	if raw := c.QueryParam("end"); raw != "" {
		t, perr := time.Parse(queryDateLayout, raw)
		if perr != nil {
			return nil, nil, fmt.Errorf("invalid end date %q, want YYYY-MM-DD", raw)
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	return start, end, nil
}

// wantMeta reports whether the client asked for the envelope response.
func wantMeta(c echo.Context) bool {
	switch strings.ToLower(c.QueryParam("meta")) {
	case "1", "true", "yes":
		return true
	}
	return false
}
