package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidUnit, "unknown unit token: %s", "em")

	if err.Code != ErrCodeInvalidUnit {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidUnit)
	}
	if err.Message != "unknown unit token: em" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	want := "INVALID_UNIT: unknown unit token: em"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "failed to save document %s", "doc-1")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	want := "STORE_ERROR: failed to save document doc-1: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeDocumentNotFound, "no such document")

	if !Is(err, ErrCodeDocumentNotFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code matching survives further wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("loading: %w", err)
	if !Is(wrapped, ErrCodeDocumentNotFound) {
		t.Error("Is should unwrap nested errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidAnchor, "bad anchor")); got != ErrCodeInvalidAnchor {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidAnchor)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: bmp")
	if got := UserMessage(err); got != "invalid format: bmp" {
		t.Errorf("UserMessage = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", got)
	}
}
