package prompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-shapegen/pkg/chart"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/stack"
)

type stubDriver struct {
	selects  []int
	pos      int
	configs  []SelectConfig
	messages []string
	confirm  []bool
	asked    []ConfirmConfig
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.configs = append(s.configs, cfg)
	if s.pos >= len(s.selects) {
		return -1, errors.New("no select scripted")
	}
	val := s.selects[s.pos]
	s.pos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.asked = append(s.asked, cfg)
	if len(s.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[0]
	s.confirm = s.confirm[1:]
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.messages = append(s.messages, msg)
	return nil
}

func indexIn(t *testing.T, options []string, name string) int {
	t.Helper()
	for i, option := range options {
		if option == name {
			return i
		}
	}
	t.Fatalf("%q not in %v", name, options)
	return -1
}

func TestTuneStackDocument(t *testing.T) {
	curves := curve.Names()
	orders := stack.OrderNames()
	offsets := stack.OffsetNames()

	driver := &stubDriver{selects: []int{
		indexIn(t, curves, "step"),
		indexIn(t, orders, "reverse"),
		indexIn(t, offsets, "expand"),
	}}
	doc := &chart.Document{Kind: chart.KindStack, Curve: "curveBasis"}

	if err := Tune(context.Background(), driver, doc); err != nil {
		t.Fatalf("tune: %v", err)
	}
	if doc.Curve != "step" || doc.Order != "reverse" || doc.Offset != "expand" {
		t.Fatalf("unexpected answers applied: %+v", doc)
	}
	if len(driver.configs) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(driver.configs))
	}
	if got := driver.configs[0].DefaultIndex; got != indexIn(t, curves, "basis") {
		t.Fatalf("expected current curve preselected, got index %d", got)
	}
	if got := driver.configs[1].DefaultIndex; got != indexIn(t, orders, "none") {
		t.Fatalf("expected none order preselected, got index %d", got)
	}
	if diff := cmp.Diff([]string{"stack: curve=step order=reverse offset=expand"}, driver.messages); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestTuneNormalizesKind(t *testing.T) {
	driver := &stubDriver{selects: []int{
		indexIn(t, curve.Names(), "linear"),
		indexIn(t, stack.OrderNames(), "ascending"),
		indexIn(t, stack.OffsetNames(), "wiggle"),
	}}
	doc := &chart.Document{Kind: "Stack"}

	if err := Tune(context.Background(), driver, doc); err != nil {
		t.Fatalf("tune: %v", err)
	}
	if len(driver.configs) != 3 || doc.Order != "ascending" || doc.Offset != "wiggle" {
		t.Fatalf("expected order and offset prompts for a mixed-case stack kind, got %d prompts, %+v", len(driver.configs), doc)
	}
	if err := Tune(context.Background(), &stubDriver{}, &chart.Document{Kind: "pie"}); !errors.Is(err, chart.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestConfirmOverwrite(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "chart.svg")

	driver := &stubDriver{}
	ok, err := ConfirmOverwrite(context.Background(), driver, missing)
	if err != nil || !ok {
		t.Fatalf("expected missing file to be writable without asking, got %v %v", ok, err)
	}
	if len(driver.asked) != 0 {
		t.Fatalf("expected no confirmation for a missing file")
	}

	existing := filepath.Join(dir, "existing.svg")
	if err := os.WriteFile(existing, []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	driver = &stubDriver{confirm: []bool{false}}
	ok, err = ConfirmOverwrite(context.Background(), driver, existing)
	if err != nil || ok {
		t.Fatalf("expected declined overwrite, got %v %v", ok, err)
	}
	if len(driver.asked) != 1 || driver.asked[0].Default {
		t.Fatalf("expected one confirmation defaulting to no, got %+v", driver.asked)
	}

	if _, err := ConfirmOverwrite(context.Background(), &stubDriver{}, existing); err == nil {
		t.Fatalf("expected driver error to propagate")
	}
}

func TestTuneLineAsksOnlyCurve(t *testing.T) {
	driver := &stubDriver{selects: []int{indexIn(t, curve.Names(), "natural")}}
	doc := &chart.Document{Kind: chart.KindLine}

	if err := Tune(context.Background(), driver, doc); err != nil {
		t.Fatalf("tune: %v", err)
	}
	if doc.Curve != "natural" || doc.Order != "" || doc.Offset != "" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(driver.configs) != 1 {
		t.Fatalf("expected a single prompt, got %d", len(driver.configs))
	}
}

func TestTunePropagatesDriverErrors(t *testing.T) {
	driver := &stubDriver{}
	err := Tune(context.Background(), driver, &chart.Document{Kind: chart.KindArea})
	if err == nil {
		t.Fatalf("expected driver error")
	}
	if err := Tune(context.Background(), nil, &chart.Document{}); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}

func TestTuneRejectsOutOfRangeSelection(t *testing.T) {
	driver := &stubDriver{selects: []int{len(curve.Names())}}
	if err := Tune(context.Background(), driver, &chart.Document{Kind: chart.KindLine}); err == nil {
		t.Fatalf("expected out of range error")
	}
}
