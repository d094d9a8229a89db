package students

import (
	"strings"
	"testing"
)

func TestBuildStudentWhere(t *testing.T) {
	tests := []struct {
		name     string
		f        StudentFilters
		wantPart string
		wantArgs int
	}{
		{name: "no filters", f: StudentFilters{}, wantPart: "st.deleted_at IS NULL", wantArgs: 0},
		{name: "search", f: StudentFilters{Search: "perez"}, wantPart: "st.name ILIKE $1", wantArgs: 1},
		{name: "active", f: StudentFilters{Status: "active"}, wantPart: "st.is_active = true", wantArgs: 0},
		{name: "inactive", f: StudentFilters{Status: "inactive"}, wantPart: "st.is_active = false", wantArgs: 0},
		{name: "course", f: StudentFilters{CourseID: "5"}, wantPart: "st.course_id = $1", wantArgs: 1},
		{name: "date range", f: StudentFilters{DateFrom: "2026-01-01", DateTo: "2026-06-30"}, wantPart: "st.enrolled_at <= $2", wantArgs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := BuildStudentWhere(tt.f)
			if !strings.Contains(where, tt.wantPart) {
				t.Errorf("clause %q missing %q", where, tt.wantPart)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildStudentWhereUnknownStatusIgnored(t *testing.T) {
	where, _ := BuildStudentWhere(StudentFilters{Status: "whatever"})
	if strings.Contains(where, "is_active") {
		t.Errorf("unknown status must not filter: %q", where)
	}
}
