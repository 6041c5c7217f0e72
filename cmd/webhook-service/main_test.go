package main

import (
	"errors"
	"os"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockApp struct {
	done chan struct{}

	runErr     bool
	usageErr   bool
	hupReturns bool
}

func (a *mockApp) Run() error {
	<-a.done
	if a.runErr {
		return errors.New("error requested")
	}
	return nil
}

func (a *mockApp) UsageError() bool { return a.usageErr }
func (a *mockApp) Hup() bool        { return a.hupReturns }
func (a *mockApp) Quit()            { close(a.done) }

//nolint:tparallel // Subtests deliver signals to the test process and cannot run in parallel.
func TestRun(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		runErr     bool
		usageErr   bool
		hupReturns bool
		sendSig    syscall.Signal

		wantExitOnSig  bool
		wantReturnCode int
	}{
		"Exits successfully":              {},
		"Exits with error":                {runErr: true, wantReturnCode: 1},
		"Exits with usage error":          {runErr: true, usageErr: true, wantReturnCode: 2},
		"Usage error alone does not fail": {usageErr: true},

		"SIGINT quits":               {sendSig: syscall.SIGINT, wantExitOnSig: true},
		"SIGTERM quits":              {sendSig: syscall.SIGTERM, wantExitOnSig: true},
		"SIGHUP does not quit":       {sendSig: syscall.SIGHUP},
		"SIGHUP quits when required": {sendSig: syscall.SIGHUP, hupReturns: true, wantExitOnSig: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if runtime.GOOS == "windows" && tc.sendSig != 0 {
				t.Skip("Signals cannot be delivered to the current process on Windows")
			}

			a := &mockApp{done: make(chan struct{}), runErr: tc.runErr, usageErr: tc.usageErr, hupReturns: tc.hupReturns}

			var rc int
			wait := make(chan struct{})
			go func() {
				rc = run(a)
				close(wait)
			}()

			time.Sleep(100 * time.Millisecond)

			exited := false
			if tc.sendSig != 0 {
				p, err := os.FindProcess(os.Getpid())
				require.NoError(t, err, "Setup: failed to find current process")
				require.NoError(t, p.Signal(tc.sendSig), "Setup: failed to send signal")

				select {
				case <-time.After(100 * time.Millisecond):
				case <-wait:
					exited = true
				}
				require.Equal(t, tc.wantExitOnSig, exited, "Unexpected exit after signal")
			}

			if !exited {
				a.Quit()
				<-wait
			}
			require.Equal(t, tc.wantReturnCode, rc, "Unexpected return code")
		})
	}
}
