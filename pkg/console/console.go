package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// ProgressLog rewrites a single terminal line to report the progress of a batch.
// Safe for concurrent use.
type ProgressLog struct {
	mu            sync.Mutex
	output        io.Writer
	showBar       bool
	showPercent   bool
	maxSteps      int
	currentStep   int
	maxCharacters int
}

func NewProgressLog(maxSteps int, options ...func(*ProgressLog)) *ProgressLog {
	result := &ProgressLog{
		output:        os.Stderr,
		showPercent:   false,
		showBar:       true,
		maxSteps:      maxSteps,
		maxCharacters: 80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.output = w
	}
}

func HideBar() func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.showBar = false
	}
}

func ShowPercent() func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.showPercent = true
	}
}

func LineLength(characters int) func(*ProgressLog) {
	return func(s *ProgressLog) {
		s.maxCharacters = characters
	}
}

// Step marks one more step as completed and logs the message.
func (l *ProgressLog) Step(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.currentStep < l.maxSteps {
		l.currentStep++
	}
	l.log(l.currentStep, message)
}

// Log reports the given step. Out-of-range steps are clamped.
func (l *ProgressLog) Log(currentStep int, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	currentStep = max(0, min(currentStep, l.maxSteps))
	l.currentStep = currentStep
	l.log(currentStep, message)
}

func (l *ProgressLog) log(currentStep int, message string) {
	i100 := 100
	if l.maxSteps > 0 {
		i100 = currentStep * 100 / l.maxSteps
	}

	// Between 0 and 10 '#' depending on the percent
	i10 := i100 / 10

	var sb strings.Builder

	if l.showBar {
		sb.WriteString(strings.Repeat("#", i10))
		sb.WriteString(strings.Repeat(" ", 10-i10))
		sb.WriteRune(' ')
	}

	if l.showPercent {
		sb.WriteString(fmt.Sprintf("(%3d%%) ", i100))
	} else {
		sb.WriteString(fmt.Sprintf("(%d/%d) ", currentStep, l.maxSteps))
	}

	sb.WriteString(message)

	fmt.Fprint(l.output, l.fit(sb.String()), "\r")
}

// fit truncates or pads the line to fill exactly the terminal columns.
func (l *ProgressLog) fit(line string) string {
	line = runewidth.Truncate(line, l.maxCharacters, "")
	return runewidth.FillRight(line, l.maxCharacters)
}

func (l *ProgressLog) Clear(newMessage string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Rewrite the last line
	fmt.Fprint(l.output, l.fit(newMessage))

	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		fmt.Fprint(l.output, "\n")
	}
}
