package visualization

import (
	"fmt"
	"strings"

	"github.com/cameron-bost/spacesettlers/pkg/executor"
	"github.com/cameron-bost/spacesettlers/pkg/utils/err_collection"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NoViewer disables displaying of rendered figures.
const NoViewer = "none"

type viewerTask struct {
	path   string
	handle executor.TaskHandle
}

// Show opens every figure file with viewer command at once and blocks until
// all viewers exit. Errors of single viewers do not stop the others and are
// returned together.
func Show(exec executor.Executor, viewer string, paths []string) error {
	viewer = strings.TrimSpace(viewer)
	if viewer == "" || viewer == NoViewer {
		logrus.Debugf("Display disabled, %d figure(s) written", len(paths))
		return nil
	}

	var errs errcollection.ErrorCollection
	tasks := []viewerTask{}
	for _, path := range paths {
		command := fmt.Sprintf("%s %s", viewer, shellQuote(path))
		handle, err := exec.Execute(command)
		if err != nil {
			errs.Add(errors.Wrapf(err, "could not show %q on %s", path, exec.Name()))
			continue
		}
		tasks = append(tasks, viewerTask{path: path, handle: handle})
	}

	for _, task := range tasks {
		task.handle.Wait(0)
		exitCode, err := task.handle.ExitCode()
		if err != nil {
			errs.Add(errors.Wrapf(err, "viewer of %q", task.path))
			continue
		}
		if exitCode != 0 {
			errs.Add(errors.Errorf("viewer of %q exited with code %d", task.path, exitCode))
		}
	}

	logrus.Debugf("Displayed %d figure(s), %d viewer(s) failed", len(paths), errs.Len())
	return errs.GetErrIfAny()
}

// shellQuote quotes s for sh.
func shellQuote(s string) string {
	return "'" + strings.Replace(s, "'", `'\''`, -1) + "'"
}
