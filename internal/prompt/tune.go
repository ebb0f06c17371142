package prompt

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-shapegen/pkg/chart"
	"github.com/goliatone/go-shapegen/pkg/curve"
	"github.com/goliatone/go-shapegen/pkg/stack"
)

// Tune asks for the curve and, for stack documents, the order and offset,
// writing the answers back onto doc. Current values preselect their option.
func Tune(ctx context.Context, driver Driver, doc *chart.Document) error {
	if driver == nil || doc == nil {
		return fmt.Errorf("prompt: tune: driver and document are required")
	}

	kind, err := chart.NormalizeKind(doc.Kind)
	if err != nil {
		return fmt.Errorf("prompt: tune: %w", err)
	}

	name, err := choose(ctx, driver, "Curve", curve.Names(), doc.Curve, "linear")
	if err != nil {
		return err
	}
	doc.Curve = name

	if kind == chart.KindStack {
		if doc.Order, err = choose(ctx, driver, "Stack order", stack.OrderNames(), doc.Order, "none"); err != nil {
			return err
		}
		if doc.Offset, err = choose(ctx, driver, "Stack offset", stack.OffsetNames(), doc.Offset, "none"); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%s: curve=%s", kind, doc.Curve)
	if kind == chart.KindStack {
		summary += fmt.Sprintf(" order=%s offset=%s", doc.Order, doc.Offset)
	}
	return driver.Info(ctx, summary)
}

// ConfirmOverwrite asks before replacing an existing output file. It returns
// true without asking when path does not exist.
func ConfirmOverwrite(ctx context.Context, driver Driver, path string) (bool, error) {
	if driver == nil {
		return false, fmt.Errorf("prompt: overwrite: driver is required")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("prompt: overwrite: %w", err)
	}
	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Overwrite %s?", path),
		Default: false,
	})
	if err != nil {
		return false, fmt.Errorf("prompt: overwrite: %w", err)
	}
	return ok, nil
}

func choose(ctx context.Context, driver Driver, message string, options []string, current, fallback string) (string, error) {
	if len(options) == 0 {
		return current, nil
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: defaultIndex(options, current, fallback),
		PageSize:     12,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: %s: %w", strings.ToLower(message), err)
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: %s: selection %d out of range", strings.ToLower(message), idx)
	}
	return options[idx], nil
}

func defaultIndex(options []string, current, fallback string) int {
	for _, want := range []string{current, fallback} {
		key := squash(want)
		if key == "" {
			continue
		}
		for i, option := range options {
			if squash(option) == key {
				return i
			}
		}
	}
	return 0
}

func squash(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, prefix := range []string{"curve", "stackorder", "stackoffset"} {
		key = strings.TrimPrefix(key, prefix)
	}
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
}
