package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ps "github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning indicates another scheduler process owns this host.
var ErrAlreadyRunning = errors.New("another scheduler instance is already running")

// ensureSingleInstance scans the process table for another copy of this
// executable. Two schedulers on one host would each run their own queue and
// split the alarms between them, so startup refuses instead.
func ensureSingleInstance() error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve own executable: %w", err)
	}

	executableName := filepath.Base(self)
	thisProcessID := os.Getpid()

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executableName {
			return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
		}
	}

	return nil
}
