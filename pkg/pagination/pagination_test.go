package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := make([]int, 35)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name               string
		page, perPage      int
		wantLen            int
		wantFirst          int
		wantNext, wantPrev bool
	}{
		{"first page", 1, 15, 15, 0, true, false},
		{"middle page", 2, 15, 15, 15, true, true},
		{"last partial page", 3, 15, 5, 30, false, true},
		{"out of range", 9, 15, 0, 0, false, true},
		{"invalid params clamp", 0, -1, 15, 0, true, false},
	}
	for _, tt := range tests {
		p := &Params{Page: tt.page, PerPage: tt.perPage}
		got := Paginate(items, p)
		if len(got.Items) != tt.wantLen {
			t.Errorf("%s: %d items, want %d", tt.name, len(got.Items), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && got.Items[0] != tt.wantFirst {
			t.Errorf("%s: first item = %d, want %d", tt.name, got.Items[0], tt.wantFirst)
		}
		if got.Pagination.HasNext != tt.wantNext || got.Pagination.HasPrev != tt.wantPrev {
			t.Errorf("%s: next/prev = %v/%v", tt.name, got.Pagination.HasNext, got.Pagination.HasPrev)
		}
	}

	if got := Paginate([]int{}, &Params{Page: 1, PerPage: 15}); got.Pagination.Total != 0 || len(got.Items) != 0 {
		t.Errorf("empty collection: %+v", got)
	}
}
