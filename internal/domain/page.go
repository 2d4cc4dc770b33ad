package domain

import (
	"strconv"
	"strings"
)

// DefaultPageSize is the number of items per page when none is configured.
const DefaultPageSize = 10

// Link names used in PageResult.Links.
const (
	LinkNextPage  = "nextPage"
	LinkLastPage  = "lastPage"
	LinkPrevPage  = "prevPage"
	LinkFirstPage = "firstPage"
)

// PageResult describes one page of a collection: which page is served, how
// the collection is windowed, and which navigation links are valid.
//
// Offset and Limit are the half-open window [Offset, Offset+Limit) the caller
// uses to slice the underlying collection. They are not part of the JSON body.
type PageResult struct {
	PageNumber int               `json:"pageNumber"`
	TotalPages int               `json:"totalPages"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	Offset     int               `json:"-"`
	Limit      int               `json:"-"`
	Links      map[string]string `json:"links"`
}

// ParsePageParam converts a raw ?page= query value into the optional page
// number accepted by ComputePage. Empty or non-numeric input yields nil.
func ParsePageParam(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// ComputePage resolves the requested page against totalCount and pageSize.
//
// It never fails: a nil or non-positive requestedPage resolves to 1 and a page
// past the end is clamped to the last page. An empty collection still has one
// (empty) page. Links are built as baseURI + "?page=N".
func ComputePage(requestedPage *int, totalCount, pageSize int, baseURI string) PageResult {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}

	totalPages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	page := 1
	if requestedPage != nil && *requestedPage > 1 {
		page = *requestedPage
	}
	if page > totalPages {
		page = totalPages
	}

	links := make(map[string]string, 4)
	if page < totalPages {
		links[LinkNextPage] = pageURI(baseURI, page+1)
		links[LinkLastPage] = pageURI(baseURI, totalPages)
	}
	if page > 1 {
		links[LinkPrevPage] = pageURI(baseURI, page-1)
		links[LinkFirstPage] = pageURI(baseURI, 1)
	}

	return PageResult{
		PageNumber: page,
		TotalPages: totalPages,
		PageSize:   pageSize,
		TotalCount: totalCount,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		Links:      links,
	}
}

func pageURI(baseURI string, page int) string {
	return baseURI + "?page=" + strconv.Itoa(page)
}
