// Package pagination parses FHIR _count/_offset search parameters and does
// the page arithmetic for searchset links.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultCount = 20
	MaxCount     = 100
)

// Params holds pagination parameters extracted from a request.
type Params struct {
	Count  int
	Offset int
}

// FromContext reads _count and _offset. Missing values take defaults, _count
// is capped at MaxCount, and anything that is not a non-negative integer is
// an error.
func FromContext(c echo.Context) (Params, error) {
	count, err := parse(c.QueryParam("_count"), "_count", DefaultCount)
	if err != nil {
		return Params{}, err
	}
	offset, err := parse(c.QueryParam("_offset"), "_offset", 0)
	if err != nil {
		return Params{}, err
	}
	if count > MaxCount {
		count = MaxCount
	}
	return Params{Count: count, Offset: offset}, nil
}

func parse(v, name string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("parameter %s must be a non-negative integer", name)
	}
	return n, nil
}

// Window returns the slice bounds of this page within total items.
func (p Params) Window(total int) (start, end int) {
	if p.Offset >= total {
		return total, total
	}
	end = p.Offset + p.Count
	if end > total || end < p.Offset {
		end = total
	}
	return p.Offset, end
}

// HasNext returns true if there are more results after the current page.
func (p Params) HasNext(total int) bool {
	return p.Count > 0 && p.Offset+p.Count < total
}

func (p Params) HasPrevious() bool {
	return p.Offset > 0
}

func (p Params) NextOffset() int {
	return p.Offset + p.Count
}

// PreviousOffset returns the offset for the previous page, never negative.
func (p Params) PreviousOffset() int {
	prev := p.Offset - p.Count
	if prev < 0 {
		return 0
	}
	return prev
}
