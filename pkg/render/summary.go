package render

import (
	"fmt"
	"io"

	"github.com/Touka01/holbertonschool-back-end/pkg/model"
)

// Summary writes the completion header for name followed by one
// tab-indented line per completed task.
func Summary(w io.Writer, name string, tasks []model.Task) error {
	r := model.NewReport(tasks)
	if _, err := fmt.Fprintf(w, "Employee %s is done with tasks (%d/%d):\n", name, r.Completed, r.Total); err != nil {
		return err
	}
	for _, title := range r.Titles {
		if _, err := fmt.Fprintf(w, "\t %s\n", title); err != nil {
			return err
		}
	}
	return nil
}
