package errors

import (
	"errors"
	"io"
	"testing"
)

func TestIsAndGetCode(t *testing.T) {
	err := Wrap(ErrCodeFormat, io.ErrUnexpectedEOF, "graph truncated after %d nodes", 3)

	if !Is(err, ErrCodeFormat) {
		t.Errorf("Is(%v, FORMAT_ERROR) = false", err)
	}
	if Is(err, ErrCodeIO) {
		t.Errorf("Is(%v, IO_ERROR) = true", err)
	}
	if GetCode(err) != ErrCodeFormat {
		t.Errorf("GetCode = %q", GetCode(err))
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("cause should be reachable through errors.Is")
	}
	if GetCode(io.EOF) != "" {
		t.Error("plain errors have no code")
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInputTooLong, "input is %d bytes", 121)
	if got, want := err.Error(), "INPUT_TOO_LONG: input is 121 bytes"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := UserMessage(err); got != "input is 121 bytes" {
		t.Errorf("UserMessage = %q", got)
	}

	wrapped := Wrap(ErrCodeIO, io.EOF, "open graph")
	if got, want := wrapped.Error(), "IO_ERROR: open graph: EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := UserMessage(io.EOF); got != "EOF" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
