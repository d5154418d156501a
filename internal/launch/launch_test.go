package launch

import (
	"runtime"
	"testing"
)

func TestLaunchEmptyCommand(t *testing.T) {
	s := NewStarter()
	if err := s.Launch(""); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestLaunchUnparseableCommand(t *testing.T) {
	s := NewStarter()
	if err := s.Launch(`program "unterminated`); err == nil {
		t.Fatal("expected error for unparseable command")
	}
}

func TestLaunchMissingProgram(t *testing.T) {
	s := NewStarter()
	if err := s.Launch("definitely-not-a-real-program-48151623"); err == nil {
		t.Fatal("expected spawn error for missing program")
	}
}

func TestLaunchFireAndForget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX sleep binary")
	}

	s := NewStarter()
	// Launch must return immediately without waiting for the child.
	if err := s.Launch("sleep 5"); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
}
