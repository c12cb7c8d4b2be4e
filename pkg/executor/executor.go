package executor

// Executor is responsible for starting commands.
// It returns TaskHandle when the command started gracefully.
// Command is executed asynchronously.
type Executor interface {
	// Execute executes command on underlying platform.
	Execute(command string) (TaskHandle, error)
	// Name returns user-friendly name of executor.
	Name() string
}
