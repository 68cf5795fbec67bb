package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithOne(t *testing.T) {
	var out bytes.Buffer
	code := -1
	origStderr, origExit := stderr, exit
	stderr = &out
	exit = func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = origStderr, origExit })

	Exitf("parse flags: %s", "bad value")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := out.String(); got != "parse flags: bad value\n" {
		t.Fatalf("stderr = %q", got)
	}
}
