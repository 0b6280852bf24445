package response

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		total      int64
		contentLen int
		wantPages  int
		wantLast   bool
	}{
		{"empty result is a single last page", 0, 10, 0, 0, 0, true},
		{"first of three pages", 0, 10, 25, 10, 3, false},
		{"middle page", 1, 10, 25, 10, 3, false},
		{"short final page", 2, 10, 25, 5, 3, true},
		{"exact fit", 1, 10, 20, 10, 2, true},
		{"page past the end", 5, 10, 25, 0, 3, true},
		{"single element", 0, 10, 1, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]int, tt.contentLen)
			p := NewPage(content, tt.pageNumber, tt.pageSize, tt.total)

			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.IsLast != tt.wantLast {
				t.Errorf("IsLast = %v, want %v", p.IsLast, tt.wantLast)
			}
			if p.TotalElements != tt.total {
				t.Errorf("TotalElements = %d, want %d", p.TotalElements, tt.total)
			}
			if p.PageNumber != tt.pageNumber || p.PageSize != tt.pageSize {
				t.Errorf("page meta = %d/%d, want %d/%d", p.PageNumber, p.PageSize, tt.pageNumber, tt.pageSize)
			}
		})
	}
}

func TestNewPageNilContentMarshalsAsEmptySlice(t *testing.T) {
	p := NewPage[string](nil, 0, 10, 0)
	if p.Content == nil {
		t.Fatal("Content is nil, want empty slice so JSON renders [] not null")
	}
}
