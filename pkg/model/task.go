package model

// User is an employee record as returned by the users endpoint.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Task is a single to-do item owned by a user.
type Task struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Report is the completion progress derived from a task list.
type Report struct {
	Completed int
	Total     int
	Titles    []string // completed task titles, in list order
}

// NewReport counts completed tasks and collects their titles.
func NewReport(tasks []Task) Report {
	r := Report{Total: len(tasks)}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		r.Completed++
		r.Titles = append(r.Titles, t.Title)
	}
	return r
}
