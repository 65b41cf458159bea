package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-signfields/pkg/field"
	"github.com/goliatone/go-signfields/pkg/layout"
	"github.com/goliatone/go-signfields/pkg/orchestrator"
	"github.com/goliatone/go-signfields/pkg/renderers/tui"
	"github.com/goliatone/go-signfields/pkg/synth"
)

func main() {
	layoutPath := flag.String("layout", "layout.json", "field layout path (JSON or YAML)")
	mode := flag.String("mode", "render", "render | fill | export")
	renderer := flag.String("renderer", "html", "renderer to use in render mode")
	exportFormat := flag.String("export", "config", "export payload: config | fabric")
	signerID := flag.String("signer", "signer-1", "signer id for the assignment")
	signerName := flag.String("signer-name", "", "signer display name")
	fieldIDs := flag.String("fields", "", "comma-separated field ids assigned to the signer (all when empty)")
	documentID := flag.String("document", "", "document id (defaults to the layout path)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	payload, err := os.ReadFile(*layoutPath)
	if err != nil {
		log.Fatalf("Failed to read layout: %v", err)
	}

	cfg, err := layout.DecodeConfig(payload)
	if err != nil {
		log.Fatalf("Failed to decode layout: %v", err)
	}
	fields, err := layout.FieldsFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to decode layout: %v", err)
	}

	docID := *documentID
	if docID == "" {
		docID = *layoutPath
	}
	doc := field.Document{
		ID:     docID,
		Status: field.DocumentPending,
		Fields: fields,
	}
	assignment := field.SignerAssignment{
		SignerID:   *signerID,
		SignerName: *signerName,
		FieldIDs:   parseFieldIDs(*fieldIDs, fields),
	}

	var out []byte
	switch *mode {
	case "render":
		gen := orchestrator.New()
		out, err = gen.Generate(ctx, orchestrator.Request{
			Document:   &doc,
			Assignment: assignment,
			Renderer:   *renderer,
		})
		if err != nil {
			log.Fatalf("Failed to render form: %v", err)
		}

	case "fill":
		form, serr := synth.Synthesize(doc, assignment)
		if serr != nil {
			log.Fatalf("Failed to synthesize form: %v", serr)
		}
		submission, ferr := tui.NewFiller().Fill(ctx, form)
		if ferr != nil {
			log.Fatalf("Failed to fill form: %v", ferr)
		}
		out, err = json.MarshalIndent(submission, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode submission: %v", err)
		}

	case "export":
		var encoded string
		switch *exportFormat {
		case "config":
			encoded, err = layout.EncodeConfig(layout.ToConfig(fields))
		case "fabric":
			encoded, err = layout.EncodeFabric(layout.ToFabric(fields))
		default:
			log.Fatalf("Unknown export format %q", *exportFormat)
		}
		if err != nil {
			log.Fatalf("Failed to export layout: %v", err)
		}
		out = []byte(encoded)

	default:
		log.Fatalf("Unknown mode %q", *mode)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

// parseFieldIDs splits the -fields flag; an empty flag assigns every field.
func parseFieldIDs(raw string, fields []field.Field) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		ids := make([]string, 0, len(fields))
		for _, f := range fields {
			ids = append(ids, f.ID)
		}
		return ids
	}
	var ids []string
	for _, part := range strings.Split(trimmed, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
