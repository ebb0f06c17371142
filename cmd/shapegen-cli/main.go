package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/goliatone/go-shapegen"
	"github.com/goliatone/go-shapegen/internal/prompt"
	"github.com/goliatone/go-shapegen/pkg/chart"
	"github.com/goliatone/go-shapegen/pkg/render"
)

func main() {
	input := flag.String("input", "", "chart document (JSON or YAML)")
	renderer := flag.String("renderer", "svg", "renderer to use (svg|png)")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for curve, order and offset")
	verbose := flag.Bool("verbose", false, "log rendering steps to stderr")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input")
	}
	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx := context.Background()

	doc, err := chart.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load chart: %v", err)
	}
	if *interactive {
		if err := prompt.Tune(ctx, prompt.Survey(), doc); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
	}

	node, err := doc.Build()
	if err != nil {
		log.Fatalf("Failed to build chart: %v", err)
	}

	registry, err := shapegen.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to set up renderers: %v", err)
	}
	out, err := registry.Render(ctx, *renderer, node, doc.RenderOptions())
	if err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	if *output != "" {
		if *interactive {
			ok, err := prompt.ConfirmOverwrite(ctx, prompt.Survey(), *output)
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
			if !ok {
				fmt.Println("Output left unchanged")
				return
			}
		}
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Chart written to %s\n", *output)
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
