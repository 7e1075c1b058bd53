package domain

import "testing"

func TestSearchCriteria_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   SearchCriteria
		want SearchCriteria
	}{
		{
			name: "empty criteria get defaults",
			in:   SearchCriteria{},
			want: SearchCriteria{SortBy: SortFieldRandom, SortOrder: SortOrderDesc, Page: 1, PageSize: 20, Mode: ModeFull},
		},
		{
			name: "page below one is corrected",
			in:   SearchCriteria{Page: -3, PageSize: 10, SortBy: SortFieldCreatedAt, SortOrder: SortOrderAsc, Mode: ModeCompact},
			want: SearchCriteria{Page: 1, PageSize: 10, SortBy: SortFieldCreatedAt, SortOrder: SortOrderAsc, Mode: ModeCompact},
		},
		{
			name: "page size above cap is clamped",
			in:   SearchCriteria{Page: 2, PageSize: 500, SortBy: SortFieldText, SortOrder: SortOrderAsc, Mode: ModeFull},
			want: SearchCriteria{Page: 2, PageSize: 100, SortBy: SortFieldText, SortOrder: SortOrderAsc, Mode: ModeFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Normalize()
			if c.Page != tt.want.Page || c.PageSize != tt.want.PageSize {
				t.Errorf("paging = (%d,%d), want (%d,%d)", c.Page, c.PageSize, tt.want.Page, tt.want.PageSize)
			}
			if c.SortBy != tt.want.SortBy || c.SortOrder != tt.want.SortOrder {
				t.Errorf("sort = (%s,%s), want (%s,%s)", c.SortBy, c.SortOrder, tt.want.SortBy, tt.want.SortOrder)
			}
			if c.Mode != tt.want.Mode {
				t.Errorf("mode = %s, want %s", c.Mode, tt.want.Mode)
			}
		})
	}
}

func TestSearchCriteria_Randomized(t *testing.T) {
	c := SearchCriteria{}
	c.Normalize()
	if !c.Randomized() {
		t.Error("unspecified sort must default to the random strategy")
	}

	c.SortBy = SortFieldCreatedAt
	if c.Randomized() {
		t.Error("created_at sort must not be randomized")
	}
}

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5f2d9c1b8a4e3f0012ab34cd", true},
		{"5F2D9C1B8A4E3F0012AB34CD", true},
		{"5f2d9c1b8a4e3f0012ab34c", false},   // 23 chars
		{"5f2d9c1b8a4e3f0012ab34cde", false}, // 25 chars
		{"5f2d9c1b8a4e3f0012ab34cg", false},  // non-hex
		{"", false},
		{"python", false},
	}

	for _, tt := range tests {
		if got := IsObjectID(tt.in); got != tt.want {
			t.Errorf("IsObjectID(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
