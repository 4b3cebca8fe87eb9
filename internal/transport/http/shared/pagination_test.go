package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/x", 1, 10},
		{"explicit", "/x?page=3&limit=25", 3, 25},
		{"capped at max", "/x?limit=500", 1, 100},
		{"junk falls back", "/x?page=abc&limit=-5", 1, 10},
		{"zero page falls back", "/x?page=0", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := ParsePage(httptest.NewRequest("GET", tt.url, nil), 10, 100)
			if page.Number != tt.wantPage || page.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d",
					page.Number, page.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageOffsetAndMeta(t *testing.T) {
	page := Page{Number: 3, Limit: 10}
	if page.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", page.Offset())
	}

	meta := page.Meta(45)
	if meta.Pages != 5 || meta.Total != 45 {
		t.Errorf("Meta(45) = %+v, want 5 pages, 45 total", meta)
	}

	if empty := page.Meta(0); empty.Pages != 0 {
		t.Errorf("Meta(0).Pages = %d, want 0", empty.Pages)
	}
}
