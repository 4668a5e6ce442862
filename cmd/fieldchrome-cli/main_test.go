package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldchrome/pkg/fields"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

const articleDocument = `
openapi: 3.0.3
info:
  title: Articles
  version: 1.0.0
paths: {}
components:
  schemas:
    Article:
      type: object
      required: [title]
      properties:
        title:
          type: string
          description: Shown in listings
        status:
          type: string
          enum: [draft, published]
        featured:
          type: boolean
        author_id:
          type: string
          title: Author
          x-fieldchrome:
            relation:
              target: authors
              add: /authors/new
              edit: false
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunRendersFieldsAndSummary(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"-openapi", writeFile(t, dir, "openapi.yaml", articleDocument),
		"-schema", "Article",
		"-values", writeFile(t, dir, "values.yaml", "title: Notes\nstatus: draft\nfeatured: true\nauthor_id: a-1\n"),
		"-errors", writeFile(t, dir, "errors.yaml", "/body/title: [Too short]\nbase: Slug already taken\n"),
		"-lookups", writeFile(t, dir, "lookups.yaml", "authors:\n  a-1: Ada Lovelace\n"),
		"-summary",
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr, nil); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}

	out := stdout.String()
	for _, fragment := range []string{
		`<div class="basefield" data-field="reference">`,
		`<li><a data-action="add" href="/authors/new">Add</a></li>`,
		`<label class="checkbox"><input type="checkbox" id="fg-featured" name="featured" value="true" checked> Featured</label>`,
		`<option value="draft" selected>Draft</option>`,
		`<p class="error-message" role="alert">Too short</p>`,
		`<p class="help">Shown in listings</p>`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
	if strings.Contains(out, `data-action="edit"`) {
		t.Fatalf("expected edit tool to be disabled\n%s", out)
	}

	if !strings.Contains(stderr.String(), `msg="form error" message="Slug already taken"`) {
		t.Fatalf("expected form level error on stderr, got %q", stderr.String())
	}

	wantSummary := "author_id: Ada Lovelace\nfeatured: Yes\nstatus: Draft\ntitle: Notes\n"
	if !strings.HasSuffix(out, wantSummary) {
		t.Fatalf("expected summary %q at the end of\n%s", wantSummary, out)
	}
}

func TestRunWritesMarkupAndSummaryToOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.html")
	args := []string{
		"-openapi", writeFile(t, dir, "openapi.yaml", articleDocument),
		"-schema", "Article",
		"-values", writeFile(t, dir, "values.yaml", "title: Notes\n"),
		"-engine", "go-template",
		"-output", output,
		"-summary",
	}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr, nil); err != nil {
		t.Fatalf("run: %v (stderr: %s)", err, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}

	raw, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	written := string(raw)
	if !strings.Contains(written, `<input type="text" id="fg-title" name="title" required value="Notes">`) {
		t.Fatalf("expected title markup in output file\n%s", written)
	}
	if !strings.HasSuffix(written, "</div>\ntitle: Notes\n") {
		t.Fatalf("expected summary at the end of the output file\n%s", written)
	}
}

func TestRunRejectsUnknownEngine(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"-openapi", writeFile(t, dir, "openapi.yaml", articleDocument),
		"-schema", "Article",
		"-engine", "jinja",
	}
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr, nil); err == nil || !strings.Contains(err.Error(), "jinja") {
		t.Fatalf("expected unknown engine error, got %v", err)
	}
}

func TestRunRequiresDocumentAndSchema(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-schema", "Article"}, &stdout, &stderr, nil); err == nil {
		t.Fatalf("expected missing -openapi to fail")
	}
}

func TestRunUnknownSchema(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-openapi", writeFile(t, dir, "openapi.yaml", articleDocument), "-schema", "Author"}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr, nil)
	if err == nil || !strings.Contains(err.Error(), `"Author" not found`) {
		t.Fatalf("expected unknown schema error, got %v", err)
	}
}

type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	asked    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, "input:"+cfg.Message+"="+cfg.Default)
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, "confirm:"+cfg.Message)
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, "select:"+cfg.Message+"="+strings.Join(cfg.Options, ","))
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func TestPromptValues(t *testing.T) {
	specs, err := schema.LoadOpenAPI(context.Background(), []byte(articleDocument), "Article")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	driver := &scriptedDriver{
		inputs:   []string{" a-2 ", "Draft notes"},
		confirms: []bool{true},
		selects:  []int{1},
	}
	values := map[string]any{"title": "Notes"}

	if err := promptValues(context.Background(), driver, fields.NewResolver(), specs, values); err != nil {
		t.Fatalf("prompt: %v", err)
	}

	wantAsked := []string{
		"input:Author=",
		"confirm:Featured",
		"select:Status=Draft,Published",
		"input:Title=Notes",
	}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	wantValues := map[string]any{
		"author_id": "a-2",
		"featured":  true,
		"status":    "published",
		"title":     "Draft notes",
	}
	if diff := cmp.Diff(wantValues, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

type abortingDriver struct{}

func (abortingDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func (abortingDriver) Confirm(context.Context, ConfirmConfig) (bool, error) {
	return false, ErrAborted
}

func (abortingDriver) Select(context.Context, SelectConfig) (int, error) {
	return 0, ErrAborted
}

func TestPromptValuesAbort(t *testing.T) {
	specs := []schema.FieldSpec{{Name: "title", Label: "Title"}}
	err := promptValues(context.Background(), abortingDriver{}, fields.NewResolver(), specs, map[string]any{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
