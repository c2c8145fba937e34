package models

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	// BlogPageSize is the fixed page size of the blog listing.
	BlogPageSize = 12
	// PageWindowSize caps the numbered page links around the current page.
	PageWindowSize = 5
	// MaxPage bounds requested page numbers so offsets never overflow.
	MaxPage = math.MaxInt32
)

// PageRequest describes which page the caller wants and where the
// navigation links should point.
type PageRequest struct {
	Page    int
	PerPage int
	Path    string
	Query   url.Values
}

// NewPageRequest parses a raw page parameter. Missing, non-numeric and
// non-positive values fall back to page 1.
func NewPageRequest(rawPage string, perPage int, path string, query url.Values) PageRequest {
	return PageRequest{
		Page:    ParsePage(rawPage),
		PerPage: perPage,
		Path:    path,
		Query:   query,
	}
}

func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return MaxPage
	}
	if err != nil || page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// InRange reports whether the page holds rows out of total.
func (r PageRequest) InRange(total int64) bool {
	return total > 0 && r.Page <= LastPage(total, r.PerPage)
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// URL returns the link to page, keeping every other query parameter.
func (r PageRequest) URL(page int) string {
	q := url.Values{}
	for k, v := range r.Query {
		if k == "page" {
			continue
		}
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	return r.Path + "?" + q.Encode()
}

type PageLink struct {
	Page   int    `json:"page"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PaginationMeta struct {
	CurrentPage int        `json:"current_page"`
	From        *int       `json:"from"`
	To          *int       `json:"to"`
	LastPage    int        `json:"last_page"`
	PerPage     int        `json:"per_page"`
	Total       int64      `json:"total"`
	Path        string     `json:"path"`
	Pages       []PageLink `json:"pages"`
}

// Paginated is one page of T plus navigation data.
type Paginated[T any] struct {
	Data  []T             `json:"data"`
	Links PaginationLinks `json:"links"`
	Meta  PaginationMeta  `json:"meta"`
}

func NewPaginated[T any](items []T, total int64, req PageRequest) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	lastPage := LastPage(total, req.PerPage)

	meta := PaginationMeta{
		CurrentPage: req.Page,
		LastPage:    lastPage,
		PerPage:     req.PerPage,
		Total:       total,
		Path:        req.Path,
		Pages:       []PageLink{},
	}
	if len(items) > 0 {
		from := req.Offset() + 1
		to := req.Offset() + len(items)
		meta.From, meta.To = &from, &to
	}
	for _, p := range PageWindow(req.Page, lastPage, PageWindowSize) {
		meta.Pages = append(meta.Pages, PageLink{Page: p, URL: req.URL(p), Active: p == req.Page})
	}

	links := PaginationLinks{First: req.URL(1), Last: req.URL(lastPage)}
	if req.Page > 1 {
		prev := req.URL(req.Page - 1)
		links.Prev = &prev
	}
	if req.Page < lastPage {
		next := req.URL(req.Page + 1)
		links.Next = &next
	}

	return Paginated[T]{Data: items, Links: links, Meta: meta}
}

// LastPage is never below 1, even for an empty result.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// PageWindow returns at most size consecutive page numbers centred on
// current and clamped to [1, last]. A current page beyond last is clamped
// to last so the window still points at real pages.
func PageWindow(current, last, size int) []int {
	if last < 1 || size < 1 {
		return nil
	}
	if current > last {
		current = last
	}
	if current < 1 {
		current = 1
	}
	start := current - size/2
	if start < 1 {
		start = 1
	}
	end := start + size - 1
	if end > last {
		end = last
		start = end - size + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
