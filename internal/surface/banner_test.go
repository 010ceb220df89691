package surface

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type evalFake struct {
	Surface
	script string
	err    error
	result int
}

func (f *evalFake) Evaluate(_ context.Context, expression string, res any) error {
	f.script = expression
	if f.err != nil {
		return f.err
	}
	if p, ok := res.(*int); ok {
		*p = f.result
	}
	return nil
}

func TestDismissBanners(t *testing.T) {
	t.Parallel()

	fake := &evalFake{result: 2}
	clicked, err := DismissBanners(context.Background(), fake)
	if err != nil {
		t.Fatalf("DismissBanners() error = %v, want nil", err)
	}
	if clicked != 2 {
		t.Errorf("DismissBanners() = %d, want 2", clicked)
	}
	for _, label := range bannerLabels {
		if !strings.Contains(fake.script, label) {
			t.Errorf("dismiss script does not mention label %q", label)
		}
	}
}

func TestDismissBannersEvaluateError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("page gone")
	fake := &evalFake{err: wantErr}
	if _, err := DismissBanners(context.Background(), fake); !errors.Is(err, wantErr) {
		t.Errorf("DismissBanners() error = %v, want %v", err, wantErr)
	}
}

func TestSelectOptionJSEscapesSelector(t *testing.T) {
	t.Parallel()

	js := selectOptionJS(`input[type="button"]`, "50")
	if !strings.Contains(js, `\"button\"`) {
		t.Errorf("selectOptionJS() does not escape quotes: %s", js)
	}
	if !strings.Contains(js, `"50"`) {
		t.Errorf("selectOptionJS() missing value literal: %s", js)
	}
}
