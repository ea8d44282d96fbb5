package errors

import (
	"errors"
	"strings"
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
				Phase:  PhaseRegion,
				Kind:   KindOutOfBounds,
				Path:   []string{"payload", "header"},
				View:   "[]byte",
				Detail: "range [8, 24) exceeds size 16",
			},
			contains: []string{"[region]", "out_of_bounds", "payload.header", "[]byte", "range [8, 24) exceeds size 16"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFixture,
				Kind:  KindNotFound,
			},
			contains: []string{"[fixture]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFixture,
				Kind:   KindInvalidData,
				Detail: "decode fixture file",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[fixture]", "invalid_data", "decode fixture file", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRegion,
		Kind:  KindInvalidData,
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
		Phase: PhaseRegion,
		Kind:  KindOutOfBounds,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseRegion, Kind: KindOutOfBounds}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseFixture, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseRegion, Kind: KindOverflow}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseRegion, Kind: KindOutOfBounds}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRegion, KindOverflow).
		Path("region", "offset").
		View("[]byte").
		Value(int64(1) << 40).
		Cause(cause).
		Detail("value %d overflows %s", int64(1)<<40, "uint32").
		Build()

	if err.Phase != PhaseRegion {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRegion)
	}
	if err.Kind != KindOverflow {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
	}
	if len(err.Path) != 2 || err.Path[0] != "region" || err.Path[1] != "offset" {
		t.Errorf("Path = %v, want [region offset]", err.Path)
	}
	if err.View != "[]byte" {
		t.Errorf("View = %v, want '[]byte'", err.View)
	}
	if err.Value != int64(1)<<40 {
		t.Errorf("Value = %v, want %v", err.Value, int64(1)<<40)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !strings.Contains(err.Detail, "overflows uint32") {
		t.Errorf("Detail = %v, want overflow message", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseRegion, 8, 16, 16)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if !strings.Contains(err.Detail, "[8, 24)") {
			t.Errorf("Detail = %v, should contain range", err.Detail)
		}
		if err.Value != 8 {
			t.Errorf("Value = %v, want 8", err.Value)
		}
	})

	t.Run("NilMemory", func(t *testing.T) {
		err := NilMemory(PhaseRegion, "module exports no memory")
		if err.Kind != KindNilMemory {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilMemory)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseRegion, int64(1)<<40, "uint32")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if !strings.Contains(err.Detail, "uint32") {
			t.Errorf("Detail = %v, should contain target type", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseFixture, "fixture", "greeting")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"greeting"`) {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseFixture, []string{"numbers"}, "empty values list")
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
		if len(err.Path) != 1 || err.Path[0] != "numbers" {
			t.Errorf("Path = %v, want [numbers]", err.Path)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io failure")
		err := Wrap(PhaseFixture, KindInvalidData, cause, "read fixture file")
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("Wrap did not preserve cause")
		}
	})
}
