package prompts

import "os"

// RawModeGuard holds the terminal in raw mode until released.
//
// The guard remembers whether raw mode was already on when it was acquired
// and only switches it off again if it was the one that switched it on. This
// lets prompts run inside a caller that manages raw mode itself.
type RawModeGuard struct {
	terminal   RawModeSwitch
	wasEnabled bool
	released   bool
}

func acquireRawMode(terminal RawModeSwitch) (*RawModeGuard, error) {
	wasEnabled := terminal.IsRawModeEnabled()
	if !wasEnabled {
		if err := terminal.EnableRawMode(); err != nil {
			return nil, err
		}
	}
	return &RawModeGuard{terminal: terminal, wasEnabled: wasEnabled}, nil
}

// Release restores the mode found at acquisition. It is safe to call more
// than once.
func (g *RawModeGuard) Release() error {
	if g == nil || g.released {
		return nil
	}
	g.released = true
	if g.wasEnabled {
		return nil
	}
	return g.terminal.DisableRawMode()
}

// RawMode puts stdin into raw mode for the lifetime of the returned guard.
//
// Prompts displayed while the guard is held leave raw mode on when they
// finish, which avoids toggling the terminal between consecutive prompts.
//
// Example:
//
//	guard, err := prompts.RawMode()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer guard.Release()
func RawMode() (*RawModeGuard, error) {
	return acquireRawMode(&realTerminal{stdinFd: int(os.Stdin.Fd())})
}
