package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Touka01/holbertonschool-back-end/pkg/model"
	"github.com/Touka01/holbertonschool-back-end/pkg/render"
)

type Mode string

const (
	ModeSummary Mode = "summary"
	ModeCSV     Mode = "csv"
)

// API is the upstream data source.
type API interface {
	GetUser(ctx context.Context, id int) (model.User, error)
	GetTasks(ctx context.Context, id int) ([]model.Task, error)
}

type Reporter struct {
	API API
	Out io.Writer
	Dir string // export destination
	Log *logrus.Entry
}

// Run fetches the user and their tasks, then renders them in the given
// mode. It stops at the first failure without producing output.
func (r *Reporter) Run(ctx context.Context, id int, mode Mode) error {
	log := r.logger().WithFields(logrus.Fields{"employee_id": id, "mode": mode})

	user, err := r.API.GetUser(ctx, id)
	if err != nil {
		return err
	}
	log.WithField("username", user.Username).Debug("resolved user")

	tasks, err := r.API.GetTasks(ctx, id)
	if err != nil {
		return err
	}
	log.WithField("tasks", len(tasks)).Debug("resolved tasks")

	switch mode {
	case ModeSummary:
		return render.Summary(r.Out, user.Name, tasks)
	case ModeCSV:
		path, err := render.ExportCSV(r.Dir, id, user.Username, tasks)
		if err != nil {
			return err
		}
		log.WithField("path", path).Info("export written")
		_, err = fmt.Fprintf(r.Out, "Tasks for User %d exported to %s\n", id, path)
		return err
	default:
		return fmt.Errorf("unknown output mode %q", mode)
	}
}

func (r *Reporter) logger() *logrus.Entry {
	if r.Log != nil {
		return r.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
