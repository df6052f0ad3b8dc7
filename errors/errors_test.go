package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindMalformedHeader,
				Detail: "bad magic 0x59617078",
			},
			contains: []string{"[load]", "malformed_header", "bad magic 0x59617078"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidOpcode,
			},
			contains: []string{"[decode]", "invalid_opcode"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindTruncated,
				Detail: "string pool entry 3",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[load]", "truncated", "string pool entry 3", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindTruncated,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOpcode,
		Detail: "opcode 0x3f",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidOpcode}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseLoad, Kind: KindInvalidOpcode}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindUnimplementedOpcode}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindInvalidOpcode}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestIsKind(t *testing.T) {
	inner := InvalidOpcode(0x3f, 12)

	if !IsKind(inner, KindInvalidOpcode) {
		t.Error("IsKind should match a direct *Error")
	}
	if IsKind(inner, KindTruncated) {
		t.Error("IsKind should not match a different kind")
	}

	// Kind survives fmt.Errorf wrapping
	wrapped := fmt.Errorf("function %q: %w", "main", inner)
	if !IsKind(wrapped, KindInvalidOpcode) {
		t.Error("IsKind should match through a wrapped chain")
	}

	if IsKind(errors.New("plain"), KindInvalidOpcode) {
		t.Error("IsKind should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLoad, KindTruncated).
		Value(3).
		Cause(cause).
		Detail("string pool entry %d of %d", 3, 8).
		Build()

	if err.Phase != PhaseLoad {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLoad)
	}
	if err.Kind != KindTruncated {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
	}
	if err.Value != 3 {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "string pool entry 3 of 8" {
		t.Errorf("Detail = %v, want 'string pool entry 3 of 8'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MalformedHeader", func(t *testing.T) {
		err := MalformedHeader("bad magic 0x%08x", uint32(0x59617078))
		if err.Kind != KindMalformedHeader {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformedHeader)
		}
		if err.Phase != PhaseLoad {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseLoad)
		}
		if !containsSubstring(err.Detail, "0x59617078") {
			t.Errorf("Detail = %v, should contain magic", err.Detail)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		cause := errors.New("EOF")
		err := Truncated(PhaseLoad, "function table", cause)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if !containsSubstring(err.Detail, "function table") {
			t.Errorf("Detail = %v, should name the section", err.Detail)
		}
		if !errors.Is(err, err) || err.Cause != cause {
			t.Error("cause not preserved")
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseLoad, "function", "main")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !containsSubstring(err.Detail, `"main"`) {
			t.Errorf("Detail = %v, should contain the name", err.Detail)
		}
	})

	t.Run("InvalidOpcode", func(t *testing.T) {
		err := InvalidOpcode(0x30, 7)
		if err.Kind != KindInvalidOpcode {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidOpcode)
		}
		if err.Value != byte(0x30) {
			t.Errorf("Value = %v, want 0x30", err.Value)
		}
		if !containsSubstring(err.Detail, "0x30") || !containsSubstring(err.Detail, "7") {
			t.Errorf("Detail = %v, should contain opcode and offset", err.Detail)
		}
	})

	t.Run("UnimplementedOpcode", func(t *testing.T) {
		err := UnimplementedOpcode(0x02, 0)
		if err.Kind != KindUnimplementedOpcode {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnimplementedOpcode)
		}
	})

	t.Run("NotLoaded", func(t *testing.T) {
		err := NotLoaded("ResolveSpan")
		if err.Kind != KindNotLoaded {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotLoaded)
		}
		if !containsSubstring(err.Detail, "ResolveSpan") {
			t.Errorf("Detail = %v, should name the operation", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseLoad, "duplicate function name %q", "main")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseRender, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("seek failed")
		err := Wrap(PhaseLoad, KindTruncated, cause, "code segment read")
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if !errors.Is(err, Wrap(PhaseLoad, KindTruncated, nil, "")) {
			t.Error("errors.Is should match same phase and kind")
		}
	})
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
