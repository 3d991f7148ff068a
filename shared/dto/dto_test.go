package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"deskhub/shared/constant"
	"deskhub/shared/dto"
	"deskhub/shared/model"
	"deskhub/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name        string
		queryParams map[string]string
		pageSize    int
		expected    dto.QueryParams
	}{
		{
			name: "with a valid page parameter",
			queryParams: map[string]string{
				"page": "2",
			},
			pageSize: constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  2,
				Limit: constant.OfficePageSize,
			},
		},
		{
			name:        "without parameters falls back to page one",
			queryParams: map[string]string{},
			pageSize:    constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.OfficePageSize,
			},
		},
		{
			name: "with an invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			pageSize: constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.OfficePageSize,
			},
		},
		{
			name: "with a negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			pageSize: constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.OfficePageSize,
			},
		},
		{
			name: "with a zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			pageSize: constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.OfficePageSize,
			},
		},
		{
			name: "limit is never caller-controlled",
			queryParams: map[string]string{
				"page":  "3",
				"limit": "500",
			},
			pageSize: constant.OfficePageSize,
			expected: dto.QueryParams{
				Page:  3,
				Limit: constant.OfficePageSize,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.pageSize)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
		})
	}
}

func TestQueryParams_OrderBy(t *testing.T) {
	params := &dto.QueryParams{}

	params.OrderBy("offices.id", "desc")
	if params.SortBy != "offices.id" || params.SortDir != dto.SortDirDesc {
		t.Errorf("expected DESC ordering on offices.id, got %s %s", params.SortBy, params.SortDir)
	}

	params.OrderBy("offices.id", "sideways")
	if params.SortDir != dto.SortDirAsc {
		t.Errorf("expected unknown directions to normalize to ASC, got %s", params.SortDir)
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		total    int
		expected dto.PageMeta
	}{
		{
			name:    "first page of a full collection",
			page:    1,
			perPage: 20,
			total:   45,
			expected: dto.PageMeta{
				CurrentPage: 1,
				PerPage:     20,
				LastPage:    3,
				Total:       45,
			},
		},
		{
			name:    "empty collection still has one page",
			page:    1,
			perPage: 20,
			total:   0,
			expected: dto.PageMeta{
				CurrentPage: 1,
				PerPage:     20,
				LastPage:    1,
				Total:       0,
			},
		},
		{
			name:    "exact multiple of the page size",
			page:    2,
			perPage: 20,
			total:   40,
			expected: dto.PageMeta{
				CurrentPage: 2,
				PerPage:     20,
				LastPage:    2,
				Total:       40,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dto.NewPageMeta(tt.page, tt.perPage, tt.total); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestNewPageLinks(t *testing.T) {
	meta := dto.NewPageMeta(2, 20, 45)
	links := dto.NewPageLinks("/v1/offices", meta)

	if links.First != "/v1/offices?page=1" {
		t.Errorf("unexpected first link %s", links.First)
	}
	if links.Last != "/v1/offices?page=3" {
		t.Errorf("unexpected last link %s", links.Last)
	}
	if links.Prev == nil || *links.Prev != "/v1/offices?page=1" {
		t.Errorf("unexpected prev link %v", links.Prev)
	}
	if links.Next == nil || *links.Next != "/v1/offices?page=3" {
		t.Errorf("unexpected next link %v", links.Next)
	}

	edge := dto.NewPageLinks("/v1/offices", dto.NewPageMeta(1, 20, 10))
	if edge.Prev != nil {
		t.Error("expected no prev link on the first page")
	}
	if edge.Next != nil {
		t.Error("expected no next link on the last page")
	}
}
