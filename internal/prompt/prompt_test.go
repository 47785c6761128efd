package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
)

func TestFiltersRepromptsOnInvalidInput(t *testing.T) {
	in := strings.NewReader("boston\nNew York City\njuly\nMarch\nfunday\n  friday \n")
	var out bytes.Buffer

	spec, err := New(in, &out, logger.Nop()).Filters()
	if err != nil {
		t.Fatalf("Filters: %v", err)
	}
	if spec.City() != models.NewYorkCity || spec.Month() != 3 || spec.Day() != "Friday" {
		t.Errorf("Unexpected spec %s", spec)
	}
	if got := strings.Count(out.String(), cityQuestion); got != 2 {
		t.Errorf("Expected city question twice, got %d", got)
	}
	if got := strings.Count(out.String(), dayQuestion); got != 2 {
		t.Errorf("Expected day question twice, got %d", got)
	}
}

func TestFiltersAll(t *testing.T) {
	spec, err := New(strings.NewReader("washington\nall\nALL\n"), io.Discard, logger.Nop()).Filters()
	if err != nil {
		t.Fatalf("Filters: %v", err)
	}
	if !spec.AllMonths() || !spec.AllDays() || spec.City() != models.Washington {
		t.Errorf("Unexpected spec %s", spec)
	}
}

func TestFiltersEOF(t *testing.T) {
	_, err := New(strings.NewReader("chicago\n"), io.Discard, logger.Nop()).Filters()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Expected io.EOF, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	p := New(strings.NewReader("YES\nno\ny\n"), io.Discard, logger.Nop())
	want := []bool{true, false, false}
	for i, w := range want {
		got, err := p.Confirm("more?")
		if err != nil {
			t.Fatalf("Confirm %d: %v", i, err)
		}
		if got != w {
			t.Errorf("Confirm %d = %v, want %v", i, got, w)
		}
	}
}
