package supervisor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"go.uber.org/zap"
)

//go:generate moq -rm -out runner_mocks_test.go . Runner Proc

// Proc is a handle to a started worker process.
type Proc interface {
	// Done is closed once the process has exited.
	Done() <-chan struct{}
	// ExitCode is only valid after Done is closed.
	ExitCode() int
	Terminate() error
	Kill() error
}

// Runner starts worker processes.
type Runner interface {
	Start(ctx context.Context, spec WorkerSpec) (Proc, error)
}

// ExecRunner runs workers as child processes of the supervisor. The bot
// token is handed over through the environment so it never shows up in
// the process list.
type ExecRunner struct {
	command string
	logger  *zap.Logger
}

// NewExecRunner ...
func NewExecRunner(command string, logger *zap.Logger) *ExecRunner {
	return &ExecRunner{
		command: command,
		logger:  logger,
	}
}

// Start ...
func (r *ExecRunner) Start(_ context.Context, spec WorkerSpec) (Proc, error) {
	cmd := exec.Command(r.command, "worker",
		"--tenant", strconv.FormatInt(spec.AdminUserID, 10),
	)
	cmd.Env = append(os.Environ(),
		"LOTTERY_BOT_TOKEN="+spec.BotToken,
		"LOTTERY_BOT_USERNAME="+spec.BotUsername,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	r.logger.Info("worker started",
		zap.Int64("admin_user_id", spec.AdminUserID),
		zap.Int("pid", cmd.Process.Pid),
	)

	proc := &execProc{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		err := cmd.Wait()
		proc.exitCode = exitCodeOf(err)
		close(proc.done)
	}()
	return proc, nil
}

type execProc struct {
	cmd      *exec.Cmd
	done     chan struct{}
	exitCode int
}

func (p *execProc) Done() <-chan struct{} {
	return p.done
}

func (p *execProc) ExitCode() int {
	return p.exitCode
}

func (p *execProc) Terminate() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

func (p *execProc) Kill() error {
	return p.cmd.Process.Kill()
}

func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
