package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestStudentJSONOmitsEmptyOptionals(t *testing.T) {
	st := Student{ID: 1, Name: "Ana Pérez", IsActive: true, EnrolledAt: time.Now()}

	b, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"school_name", "course_id", "course", "deleted_at"} {
		if strings.Contains(string(b), `"`+key+`"`) {
			t.Errorf("expected %q to be omitted, got %s", key, b)
		}
	}
}

func TestStudentJSONIncludesJoinedCourse(t *testing.T) {
	courseID := 5
	st := Student{ID: 1, Name: "Ana Pérez", CourseID: &courseID, Course: &Course{ID: 5, Name: "Intermedio"}}

	b, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"course_id":5`) || !strings.Contains(string(b), `"Intermedio"`) {
		t.Errorf("expected joined course in payload, got %s", b)
	}
}
