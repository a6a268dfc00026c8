package query

import (
	"net/url"
	"strconv"
	"strings"

	"notesvc/apperror"
)

// Limits bound the page size of one endpoint.
type Limits struct {
	Default int
	Max     int
}

var (
	ListLimits   = Limits{Default: 50, Max: 200}
	ExportLimits = Limits{Default: 1000, Max: 10000}
)

// Clamp maps a requested size into [1, Max]; zero means "use Default".
func (l Limits) Clamp(n int) int {
	if n == 0 {
		n = l.Default
	}
	if n < 1 {
		return 1
	}
	if n > l.Max {
		return l.Max
	}
	return n
}

// Order is the requested sort. Explicit is set when order_by was supplied,
// which keeps rank ordering from overriding it.
type Order struct {
	Field    SortField
	Dir      Direction
	Explicit bool
}

// Page carries both pagination inputs; the plan decides which one applies.
type Page struct {
	Limit       int
	Offset      int
	OffsetGiven bool
	// Cursor is nil when absent, malformed or shaped for another sort field.
	Cursor *Cursor
}

// ListOptions is everything a list, count or export request asks for.
type ListOptions struct {
	Filter  Filter
	Order   Order
	Page    Page
	Rank    bool
	RankMin float64
}

func ParseListOptions(params url.Values, limits Limits) (ListOptions, error) {
	f, err := ParseFilter(params)
	if err != nil {
		return ListOptions{}, err
	}
	order, err := ParseOrder(params)
	if err != nil {
		return ListOptions{}, err
	}
	page, err := ParsePage(params, limits, order.Field)
	if err != nil {
		return ListOptions{}, err
	}

	opts := ListOptions{
		Filter:  f,
		Order:   order,
		Page:    page,
		Rank:    parseFlag(params.Get("rank")),
		RankMin: DefaultRankMin,
	}
	if raw := strings.TrimSpace(params.Get("rank_min")); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || min < 0 || min > 1 {
			return ListOptions{}, apperror.ErrValidation.WithMessage("rank_min must be a number between 0 and 1")
		}
		opts.RankMin = min
	}
	return opts, nil
}

func ParseOrder(params url.Values) (Order, error) {
	field, err := ParseSortField(params.Get("order_by"))
	if err != nil {
		return Order{}, err
	}
	dir, err := ParseDirection(params.Get("order"))
	if err != nil {
		return Order{}, err
	}
	return Order{
		Field:    field,
		Dir:      dir,
		Explicit: strings.TrimSpace(params.Get("order_by")) != "",
	}, nil
}

// ParsePage reads limit, offset and cursor. A cursor that does not decode, or
// that lacks the key the sort field needs, is ignored.
func ParsePage(params url.Values, limits Limits, field SortField) (Page, error) {
	var p Page

	limit := 0
	if raw := strings.TrimSpace(params.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, apperror.ErrValidation.WithMessage("limit must be an integer")
		}
		if n < 1 {
			n = 1
		}
		limit = n
	}
	p.Limit = limits.Clamp(limit)

	if raw := strings.TrimSpace(params.Get("offset")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Page{}, apperror.ErrValidation.WithMessage("offset must be a non-negative integer")
		}
		p.Offset = n
		p.OffsetGiven = true
	}

	if c, ok := DecodeCursor(params.Get("cursor")); ok && c.fits(field) {
		p.Cursor = &c
	}
	return p, nil
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
