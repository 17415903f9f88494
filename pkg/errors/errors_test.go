package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		detailsOK bool
	}{
		{code: CodeValidation, publicMsg: "validation failed", detailsOK: true},
		{code: CodeUnauthorized, publicMsg: "authentication required"},
		{code: CodeForbidden, publicMsg: "access denied"},
		{code: CodeNotFound, publicMsg: "resource not found"},
		{code: CodeConflict, publicMsg: "conflict detected"},
		{code: CodeInternal, publicMsg: "internal error"},
		{code: CodeDependency, publicMsg: "dependency failure"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("expected internal metadata, got %q", meta.PublicMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatal("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatal("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeConflict, cause, "ctx")
	if wrapped.Code() != CodeConflict {
		t.Fatalf("expected conflict code, got %s", wrapped.Code())
	}
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to unwrap")
	}

	if got := Wrap(CodeConflict, nil, "ctx"); got.Unwrap() != nil {
		t.Fatal("wrapping nil should produce no cause")
	}
}

func TestAsFindsTypedError(t *testing.T) {
	typed := New(CodeNotFound, "missing")
	wrapped := Wrap(CodeDependency, typed, "outer")

	if found := As(wrapped); found == nil || found.Code() != CodeDependency {
		t.Fatalf("expected outer typed error, got %v", found)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors should not match")
	}
	if As(nil) != nil {
		t.Fatal("nil should not match")
	}
}
