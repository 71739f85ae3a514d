package doctor

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"keyhook/shutdown"
)

// saved is the terminal state at startup. The self-test's synthetic keys
// and an interrupted hook can leave the tty in a raw mode.
var saved *term.State

func saveTerminal() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	if st, err := term.GetState(fd); err == nil {
		saved = st
	}
}

func resetTerminal() {
	if saved != nil {
		term.Restore(int(os.Stdin.Fd()), saved)
	}
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		resetTerminal()
		fmt.Fprintln(os.Stderr, "\nInterrupted")
		os.Exit(1)
	}()
}
