package model

import (
	"reflect"
	"testing"
)

func TestNewReport(t *testing.T) {
	tasks := []Task{
		{UserID: 1, ID: 1, Title: "delectus aut autem", Completed: false},
		{UserID: 1, ID: 2, Title: "quis ut nam facilis", Completed: true},
		{UserID: 1, ID: 3, Title: "fugiat veniam minus", Completed: false},
		{UserID: 1, ID: 4, Title: "et porro tempora", Completed: true},
	}

	r := NewReport(tasks)
	if r.Total != 4 {
		t.Errorf("Expected total 4, got %d", r.Total)
	}
	if r.Completed != 2 {
		t.Errorf("Expected 2 completed, got %d", r.Completed)
	}
	want := []string{"quis ut nam facilis", "et porro tempora"}
	if !reflect.DeepEqual(r.Titles, want) {
		t.Errorf("Expected titles %v, got %v", want, r.Titles)
	}
}

func TestNewReportEmpty(t *testing.T) {
	r := NewReport(nil)
	if r.Total != 0 || r.Completed != 0 {
		t.Errorf("Expected 0/0, got %d/%d", r.Completed, r.Total)
	}
	if len(r.Titles) != 0 {
		t.Errorf("Expected no titles, got %v", r.Titles)
	}
}

func TestNewReportCountInvariant(t *testing.T) {
	cases := [][]bool{
		{},
		{true},
		{false},
		{true, true, true},
		{false, true, false, true, false},
	}
	for _, flags := range cases {
		var tasks []Task
		want := 0
		for i, done := range flags {
			tasks = append(tasks, Task{ID: i, Title: string(rune('a' + i)), Completed: done})
			if done {
				want++
			}
		}
		r := NewReport(tasks)
		if r.Completed != want {
			t.Errorf("flags %v: expected %d completed, got %d", flags, want, r.Completed)
		}
		if r.Completed > r.Total {
			t.Errorf("flags %v: completed %d exceeds total %d", flags, r.Completed, r.Total)
		}
		if len(r.Titles) != r.Completed {
			t.Errorf("flags %v: expected %d titles, got %d", flags, r.Completed, len(r.Titles))
		}
	}
}
