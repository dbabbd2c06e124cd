//go:build !windows

// Package stderr captures output that audio backends (ALSA, the speaker
// driver) write straight to file descriptor 2, bypassing os.Stderr, so it
// cannot corrupt the TUI.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/llehouerou/reel/internal/log"
)

// Messages receives captured lines for display. Lines are dropped when
// nobody keeps up.
var Messages = make(chan string, 100)

var (
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe. Every captured line is logged and
// offered on Messages. Call it before the audio device is opened; on error
// the program can continue uncaptured.
func Start() error {
	if done != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead, pipeWrite = r, w
	done = make(chan struct{})
	go forward(r, done)

	return nil
}

func forward(r io.Reader, done chan<- struct{}) {
	defer close(done)
	entry := log.For("stderr")
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry.Warn(line)
		select {
		case Messages <- line:
		default:
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must stay visible.
func WriteOriginal(msg string) {
	if origStderr >= 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for captured output to drain.
func Stop() {
	if done == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	pipeWrite.Close()
	<-done
	pipeRead.Close()
	done = nil
}
