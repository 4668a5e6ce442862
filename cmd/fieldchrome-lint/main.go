package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goliatone/go-fieldchrome/pkg/schema"
)

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s paths...\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for misused %s extensions.\n", schema.ExtensionKey); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	loader := schema.NewLoader(schema.WithHTTPClient(http.DefaultClient))
	failed := false
	for _, path := range paths {
		src, err := schema.ParseSource(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		doc, err := loader.Load(ctx, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations, err := doc.Lint(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, v)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
