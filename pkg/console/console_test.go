package console_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"gotest.tools/assert"

	"github.com/julien-sobczak/mdscan/pkg/console"
)

func TestNewProgressLog_default(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(2,
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 2+1; i++ {
		l.Log(i, "Processing...")
	}
	l.Clear("Done!!!!!!!!!!!!!!!!!!!!!!!!!!")

	expected := "" +
		"           (0/2) Processing...\r" +
		"#####      (1/2) Processing...\r" +
		"########## (2/2) Processing...\r" +
		"Done!!!!!!!!!!!!!!!!!!!!!!!!!!\n"
	assert.Equal(t, out.String(), expected)
}

func TestNewProgressLog_percent(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(5,
		console.ShowPercent(),
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 5+1; i++ {
		l.Log(i, "Processing...")
	}
	l.Clear("")

	expected := "" +
		"           (  0%) Processing..\r" +
		"##         ( 20%) Processing..\r" +
		"####       ( 40%) Processing..\r" +
		"######     ( 60%) Processing..\r" +
		"########   ( 80%) Processing..\r" +
		"########## (100%) Processing..\r" +
		"                              \r"
	assert.Equal(t, out.String(), expected)
}

func TestNewProgressLog_wideCharacters(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(1,
		console.HideBar(),
		console.ToWriter(&out),
		console.LineLength(12))
	l.Log(1, "你好世界.md")

	// Each CJK character takes two columns
	assert.Equal(t, out.String(), "(1/1) 你好世\r")
}

func TestProgressLog_Step(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(4,
		console.HideBar(),
		console.ToWriter(&out),
		console.LineLength(20))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Step("file.md")
		}()
	}
	wg.Wait()
	l.Step("file.md") // Never exceeds the max

	lines := strings.Split(strings.TrimSuffix(out.String(), "\r"), "\r")
	assert.Equal(t, len(lines), 5)
	assert.Equal(t, lines[3], "(4/4) file.md       ")
	assert.Equal(t, lines[4], "(4/4) file.md       ")
}

func TestProgressLog_outOfRange(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(2,
		console.ToWriter(&out),
		console.LineLength(20))
	l.Log(5, "over")
	l.Log(-1, "under")

	expected := "" +
		"########## (2/2) ove\r" +
		"           (0/2) und\r"
	assert.Equal(t, out.String(), expected)
}
