// Package testutil provides helpers for checking rendered frames in tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

// Plain removes escape sequences so rendered output can be compared as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Lines splits a frame into plain lines.
func Lines(frame string) []string {
	return strings.Split(Plain(frame), "\n")
}

// FindLine returns the first plain line containing substr, or "".
func FindLine(frame, substr string) string {
	for _, line := range Lines(frame) {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineOf returns the row of the first line containing substr, or -1.
func LineOf(frame, substr string) int {
	for i, line := range Lines(frame) {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// AssertFrame checks that frame has exactly height rows, none wider than
// width cells.
func AssertFrame(t assert.TestingT, frame string, width, height int) bool {
	helper(t)
	lines := strings.Split(frame, "\n")
	ok := assert.Len(t, lines, height, "frame height")
	for i, line := range lines {
		ok = assert.LessOrEqual(t, ansi.StringWidth(line), width, "row %d too wide", i) && ok
	}
	return ok
}

// AssertContains checks the plain text of frame for substr.
func AssertContains(t assert.TestingT, frame, substr string) bool {
	helper(t)
	return assert.Contains(t, Plain(frame), substr)
}

// AssertNotContains checks that the plain text of frame lacks substr.
func AssertNotContains(t assert.TestingT, frame, substr string) bool {
	helper(t)
	return assert.NotContains(t, Plain(frame), substr)
}

func helper(t assert.TestingT) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
}
