package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

type msgOnly struct{ msg string }

func (m msgOnly) Message() string { return m.msg }

func TestNormalize_IdempotentForAPIError(t *testing.T) {
	in := APIError{Message: "boom", Status: 502, Code: "1146"}
	got := Normalize(in)
	if got != in {
		t.Fatalf("expected unchanged error, got %+v", got)
	}
	if again := Normalize(got); again != in {
		t.Fatalf("second normalize changed value: %+v", again)
	}
	if ptr := Normalize(&in); ptr != in {
		t.Fatalf("pointer form not unwrapped: %+v", ptr)
	}
}

func TestNormalize_WrappedAPIError(t *testing.T) {
	in := APIError{Message: "table missing", Status: 404, Code: "42P01"}
	got := Normalize(fmt.Errorf("load trips: %w", in))
	if got != in {
		t.Fatalf("expected wrapped APIError to be returned, got %+v", got)
	}
}

func TestNormalize_PlainError(t *testing.T) {
	got := Normalize(errors.New("connection refused"))
	if got.Message != "connection refused" || got.Status != 0 || got.Code != "" {
		t.Fatalf("unexpected normalized error: %+v", got)
	}
}

func TestNormalize_TypedErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{NotFoundError{Resource: "trip"}, http.StatusNotFound, "not_found"},
		{ValidationError{Field: "limit", Msg: "must be positive"}, http.StatusBadRequest, "validation_error"},
		{ConflictError{Resource: "part"}, http.StatusConflict, "conflict"},
		{InternalError{Msg: "broken"}, http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		got := Normalize(tc.err)
		if got.Status != tc.status || got.Code != tc.code || got.Message != tc.err.Error() {
			t.Fatalf("Normalize(%v) = %+v", tc.err, got)
		}
	}
}

func TestNormalize_UnknownValues(t *testing.T) {
	for _, v := range []any{nil, 42, "just a string", struct{}{}, errors.New(""), msgOnly{}, (*APIError)(nil)} {
		got := Normalize(v)
		if got.Message != UnknownErrorMessage {
			t.Fatalf("Normalize(%#v) = %+v, want unknown message", v, got)
		}
	}
}

func TestNormalize_MessageExposer(t *testing.T) {
	got := Normalize(msgOnly{msg: "quota exceeded"})
	if got.Message != "quota exceeded" {
		t.Fatalf("got %+v", got)
	}
}

func TestSortDirectionFlip(t *testing.T) {
	if SortAsc.Flip() != SortDesc || SortDesc.Flip() != SortAsc {
		t.Fatalf("flip is not symmetric")
	}
	if ParseSortDirection("descending") != SortDesc || ParseSortDirection("bogus") != SortAsc {
		t.Fatalf("unexpected parse result")
	}
}

func TestInternalErrorIncludesCause(t *testing.T) {
	err := InternalError{Msg: "decode row 0", Err: errors.New("bad json")}
	if err.Error() != "decode row 0: bad json" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if got := Normalize(err); got.Message != "decode row 0: bad json" || got.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected normalized error %+v", got)
	}
}
