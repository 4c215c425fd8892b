// Package main renders the sc command reference as markdown, man pages or YAML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/jadehome/seller-console/cmd/sc/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated files")
	format := flag.String("format", "markdown", "output format: markdown, man or yaml")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	var err error
	switch *format {
	case "markdown":
		err = doc.GenMarkdownTree(root, *output)
	case "man":
		err = doc.GenManTree(root, &doc.GenManHeader{
			Title:   "SC",
			Section: "1",
			Source:  "seller-console",
		}, *output)
	case "yaml":
		err = doc.GenYamlTree(root, *output)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("generating %s docs: %v", *format, err)
	}

	fmt.Printf("sc %s reference generated in %s/\n", *format, *output)
}
