package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestGenErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *GenError
		want string
	}{
		{
			name: "message only",
			err:  &GenError{Code: ErrCodeConfig, Message: "invalid project registry"},
			want: "invalid project registry",
		},
		{
			name: "with project",
			err:  &GenError{Code: ErrCodeNotFound, Message: "project not found", Project: "filter-ical"},
			want: "project filter-ical: project not found",
		},
		{
			name: "with wrapped error",
			err:  &GenError{Code: ErrCodeIO, Message: "failed to write config", Err: fmt.Errorf("disk full")},
			want: "failed to write config: disk full",
		},
		{
			name: "with project and wrapped error",
			err:  &GenError{Code: ErrCodeRender, Message: "failed to render config", Project: "dashboard", Err: fmt.Errorf("bad template")},
			want: "project dashboard: failed to render config: bad template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("missing-project")

	if !Is(err, ErrProjectNotFound) {
		t.Error("NotFound error should match ErrProjectNotFound")
	}

	var genErr *GenError
	if !As(err, &genErr) {
		t.Fatal("expected *GenError")
	}
	if genErr.Project != "missing-project" {
		t.Errorf("Project = %q, want %q", genErr.Project, "missing-project")
	}
	if genErr.Code != ErrCodeNotFound {
		t.Errorf("Code = %q, want %q", genErr.Code, ErrCodeNotFound)
	}
}

func TestWrapUnwrap(t *testing.T) {
	underlying := stderrors.New("no such file")
	err := Wrap(ErrCodeConfig, "failed to load registry", underlying)

	if !Is(err, ErrRegistryInvalid) {
		t.Error("CONFIG errors should match ErrRegistryInvalid")
	}
	if !Is(err, underlying) {
		t.Error("wrapped error should be reachable via errors.Is")
	}

	var genErr *GenError
	if !As(err, &genErr) {
		t.Fatal("expected *GenError")
	}
	if genErr.Unwrap() != underlying {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestIsCodeMismatch(t *testing.T) {
	err := Wrap(ErrCodeIO, "write failed", nil)
	if Is(err, ErrProjectNotFound) {
		t.Error("IO error should not match NOT_FOUND sentinel")
	}
	if Is(err, ErrValidationFailed) {
		t.Error("IO error should not match VALIDATION sentinel")
	}
}

func TestRender(t *testing.T) {
	underlying := stderrors.New("template: bad data")
	err := Render("filter-ical", underlying)

	var genErr *GenError
	if !As(err, &genErr) {
		t.Fatal("expected *GenError")
	}
	if genErr.Code != ErrCodeRender {
		t.Errorf("Code = %q, want %q", genErr.Code, ErrCodeRender)
	}
	if !Is(err, underlying) {
		t.Error("underlying error should be preserved")
	}
}
