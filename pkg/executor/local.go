package executor

import (
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const outputWaitDelay = time.Second

// Local provides the execution environment on local machine via exec.Command.
// It runs command as current user.
type Local struct{}

// NewLocal returns a Local instance.
func NewLocal() Local {
	return Local{}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command given as input in a shell.
// Output of the command is forwarded to the logger at debug level.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	log := logrus.WithField("command", command)
	output := log.WriterLevel(logrus.DebugLevel)

	cmd := exec.Command("sh", "-c", command)
	// Separate process group lets Stop signal the shell and its children.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = output
	cmd.Stderr = output
	// Children left behind by the command may keep output open after it exits.
	cmd.WaitDelay = outputWaitDelay

	log.Debug("Starting")
	if err := cmd.Start(); err != nil {
		output.Close()
		return nil, errors.Wrapf(err, "could not start %q", command)
	}
	log.Debug("Started with pid ", cmd.Process.Pid)

	handle := &localTaskHandle{
		pid:  cmd.Process.Pid,
		done: make(chan struct{}),
	}

	go func() {
		// Wait returns an error for non zero exit as well; the exit code is
		// taken from the process state below in any case.
		cmd.Wait()
		output.Close()

		status := cmd.ProcessState.Sys().(syscall.WaitStatus)
		var exitCode int
		if status.Exited() {
			exitCode = status.ExitStatus()
		} else {
			// Negative signal number which caused the termination.
			exitCode = -int(status.Signal())
		}
		log.Debug("Ended with status code ", exitCode)

		handle.complete(exitCode)
	}()

	return handle, nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	pid int

	mutex    sync.Mutex
	exitCode int
	done     chan struct{}
}

func (t *localTaskHandle) complete(exitCode int) {
	t.mutex.Lock()
	t.exitCode = exitCode
	t.mutex.Unlock()
	close(t.done)
}

func (t *localTaskHandle) isTerminated() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Stop terminates the whole process group of the task and waits for it.
func (t *localTaskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}

	// The kill syscall interprets a negated PID as the process group.
	logrus.Debug("Sending SIGTERM to PID ", -t.pid)
	if err := syscall.Kill(-t.pid, syscall.SIGTERM); err != nil && !t.isTerminated() {
		return errors.Wrapf(err, "could not stop process group %d", t.pid)
	}

	<-t.done
	return nil
}

// Status returns a state of the task.
func (t *localTaskHandle) Status() TaskState {
	if t.isTerminated() {
		return TERMINATED
	}
	return RUNNING
}

// ExitCode returns exit code of terminated task.
func (t *localTaskHandle) ExitCode() (int, error) {
	if !t.isTerminated() {
		return -1, errors.New("task is still running")
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.exitCode, nil
}

// Wait blocks until process is terminated or timeout appeared.
// Returns true when process terminates before timeout, otherwise false.
func (t *localTaskHandle) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-t.done
		return true
	}

	select {
	case <-t.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
