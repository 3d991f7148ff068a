package dto

import (
	"fmt"
	"math"
)

// PageMeta describes the position of a page inside a paginated collection.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// PageLinks carries navigation URLs for a paginated collection. Prev and Next
// are omitted at the collection edges.
type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

func NewPageMeta(page, perPage, total int) PageMeta {
	lastPage := 1
	if total > 0 && perPage > 0 {
		lastPage = int(math.Ceil(float64(total) / float64(perPage)))
	}

	return PageMeta{
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
		Total:       total,
	}
}

func NewPageLinks(basePath string, meta PageMeta) PageLinks {
	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d", basePath, page)
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(meta.LastPage),
	}

	if meta.CurrentPage > 1 {
		prev := pageURL(meta.CurrentPage - 1)
		links.Prev = &prev
	}

	if meta.CurrentPage < meta.LastPage {
		next := pageURL(meta.CurrentPage + 1)
		links.Next = &next
	}

	return links
}
