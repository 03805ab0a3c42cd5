package system

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintInput(t *testing.T) {
	var out bytes.Buffer
	prev := Stdout
	Stdout = &out
	t.Cleanup(func() {
		Stdout = prev
		SetStdin(os.Stdin)
	})

	SetStdin(strings.NewReader("first line\r\nsecond"))

	Print("hello")
	assert.Equal(t, "first line", Input("? "))
	assert.Equal(t, "second", Input("> "))
	assert.Equal(t, "", Input(""))

	assert.Equal(t, "hello\n? > ", out.String())
}

func TestAppArgs(t *testing.T) {
	prev := os.Args
	t.Cleanup(func() { os.Args = prev })

	os.Args = []string{"prog", "a", "b"}
	assert.Equal(t, "prog", AppName())
	assert.Equal(t, []string{"a", "b"}, AppArgs().Strings())

	os.Args = []string{"prog"}
	assert.Equal(t, 0, AppArgs().Size())
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}

	assert.Equal(t, "hi\n", Run("echo hi"))
	assert.Equal(t, "partial\n", Run("echo partial; exit 3"))
}
