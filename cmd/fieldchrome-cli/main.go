package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldchrome/pkg/chrome"
	"github.com/goliatone/go-fieldchrome/pkg/field"
	"github.com/goliatone/go-fieldchrome/pkg/fields"
	"github.com/goliatone/go-fieldchrome/pkg/filter"
	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

type options struct {
	openapi     string
	schemaName  string
	values      string
	errors      string
	lookups     string
	config      string
	engine      string
	output      string
	summary     bool
	interactive bool
	verbose     bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, newSurveyDriver()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("fieldchrome: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fieldchrome-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL (JSON or YAML)")
	fs.StringVar(&opts.schemaName, "schema", "", "component schema to render")
	fs.StringVar(&opts.values, "values", "", "YAML file of field values")
	fs.StringVar(&opts.errors, "errors", "", "YAML file of validation errors keyed by field or JSON pointer, marks those fields touched")
	fs.StringVar(&opts.lookups, "lookups", "", "YAML file mapping reference targets to id labels")
	fs.StringVar(&opts.config, "config", "", "chrome configuration YAML")
	fs.StringVar(&opts.engine, "engine", "", "template engine for chrome markup: pongo2 or go-template (overrides -config)")
	fs.StringVar(&opts.output, "output", "", "output file for markup and summary (stdout if empty)")
	fs.BoolVar(&opts.summary, "summary", false, "write the filter summary after the fields")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for field values")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging on stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if strings.TrimSpace(opts.openapi) == "" || strings.TrimSpace(opts.schemaName) == "" {
		fs.Usage()
		return opts, errors.New("-openapi and -schema are required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver PromptDriver) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := schema.ParseSource(opts.openapi)
	if err != nil {
		return err
	}
	loader := schema.NewLoader(
		schema.WithHTTPClient(http.DefaultClient),
		schema.WithRequestTimeout(30*time.Second),
	)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return err
	}
	specs, err := doc.Specs(ctx, opts.schemaName)
	if err != nil {
		return err
	}
	logger.Debug("loaded schema", slog.String("schema", opts.schemaName), slog.Int("fields", len(specs)))

	values := map[string]any{}
	if err := readYAML(opts.values, &values); err != nil {
		return fmt.Errorf("read values: %w", err)
	}
	payload := map[string]any{}
	if err := readYAML(opts.errors, &payload); err != nil {
		return fmt.Errorf("read errors: %w", err)
	}
	mapping := schema.MapErrors(specs, errorMessages(payload))
	for _, message := range mapping.Form {
		logger.Warn("form error", slog.String("message", message))
	}
	lookups := map[string]map[string]string{}
	if err := readYAML(opts.lookups, &lookups); err != nil {
		return fmt.Errorf("read lookups: %w", err)
	}

	cfg := chrome.DefaultConfig()
	if opts.config != "" {
		if cfg, err = chrome.LoadConfig(opts.config); err != nil {
			return err
		}
	}
	if opts.engine != "" {
		cfg.Engine = opts.engine
	}
	renderer, err := chrome.New(chrome.WithConfig(cfg))
	if err != nil {
		return err
	}

	registry := fields.NewDefaultRegistry(
		fields.Defaults{Lookup: lookupFrom(lookups)},
		field.WithChrome(renderer),
		field.WithDiagnostics(field.NewSlogDiagnostics(logger)),
	)
	resolver := fields.NewResolver()

	if opts.interactive {
		if err := promptValues(ctx, driver, resolver, specs, values); err != nil {
			return err
		}
	}

	out := stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	summary := filter.New(filter.WithConcurrency(4))
	var instances []*field.Instance
	defer func() {
		for _, instance := range instances {
			instance.Unmount()
		}
	}()

	for _, spec := range specs {
		kind := resolver.Resolve(spec)
		decorated, ok := registry.Lookup(kind)
		if !ok {
			return fmt.Errorf("field %q: unknown kind %q", spec.Name, kind)
		}

		props := spec.Props(values[spec.Name])
		if message := mapping.Message(spec.Name); message != "" {
			props.Meta = field.Meta{Touched: true, Error: message}
		}
		props.RegisterFilterField = summary.Register

		instance, err := decorated.Mount(ctx, props)
		if err != nil {
			return err
		}
		instances = append(instances, instance)
		logger.Debug("mounted field", slog.String("field", spec.Name), slog.String("kind", kind))

		markup, err := instance.Render()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, markup); err != nil {
			return err
		}
	}

	if !opts.summary {
		return nil
	}
	entries, err := summary.Summary(ctx, values)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(out, "%s: %s\n", entry.Name, entry.Text); err != nil {
			return err
		}
	}
	return nil
}

// errorMessages accepts a single message or a list of messages per key.
func errorMessages(payload map[string]any) map[string][]string {
	out := make(map[string][]string, len(payload))
	for key, value := range payload {
		switch typed := value.(type) {
		case string:
			out[key] = []string{typed}
		case []any:
			for _, item := range typed {
				out[key] = append(out[key], fmt.Sprint(item))
			}
		}
	}
	return out
}

func readYAML(path string, target any) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, target)
}

// lookupFrom serves reference labels from a static table. Unknown ids keep
// their raw value.
func lookupFrom(table map[string]map[string]string) fields.LookupFunc {
	if len(table) == 0 {
		return nil
	}
	return func(ctx context.Context, target, id string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if label, ok := table[target][id]; ok {
			return label, nil
		}
		return id, nil
	}
}
