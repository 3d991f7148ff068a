package dto

import (
	"net/http"
	"strconv"
	"strings"

	"deskhub/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. Only the page
// number is caller-controlled; the page size is fixed per listing endpoint.
func (q *QueryParams) FromRequest(r *http.Request, pageSize int) {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.Limit = pageSize

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}
}

// OrderBy sets an explicit ordering expression with direction normalization.
func (q *QueryParams) OrderBy(expr, dir string) {
	q.SortBy = expr

	if strings.ToUpper(dir) == SortDirDesc {
		q.SortDir = SortDirDesc
	} else {
		q.SortDir = SortDirAsc
	}
}
