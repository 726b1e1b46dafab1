// Package main provides the CLI entrypoint for qmlconv.
//
// qmlconv retypes and normalizes QuakeML documents:
//   - Parses a QuakeML file into a tree with heuristic typing, or with
//     schema-driven typing when an XSD is supplied
//   - Optionally validates the document against an XSD
//   - Re-serializes through the precision normalizer
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"qmlutil/codec"
	"qmlutil/normalize"
	"qmlutil/schema"
	"qmlutil/typing"
	"qmlutil/validate"
)

func main() {
	schemaPath := pflag.String("schema", "", "XSD file driving schema-based typing")
	xsdPath := pflag.String("xsd", "", "XSD file to validate the document against")
	configPath := pflag.String("config", "", "YAML config file (skip keys, namespace)")
	outPath := pflag.StringP("out", "o", "", "output file (default stdout)")
	round := pflag.Bool("round", true, "apply precision rounding on output")
	indent := pflag.Bool("indent", false, "indent output XML")
	debug := pflag.Bool("debug", false, "dump the typed tree to stderr")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qmlconv [flags] <quakeml-file>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *schemaPath, *xsdPath, *configPath, *outPath, *round, *indent, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "qmlconv:", err)
		os.Exit(1)
	}
}

func run(inPath, schemaPath, xsdPath, configPath, outPath string, round, indent, debug bool) error {
	cfg := defaultConfig()
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if xsdPath != "" {
		v, err := validate.NewFromFile(xsdPath)
		if err != nil {
			return err
		}
		if err := v.ValidateFile(inPath); err != nil {
			return fmt.Errorf("validate %s: %w", inPath, err)
		}
	}

	input, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	root, err := retype(input, schemaPath, cfg)
	if err != nil {
		return err
	}

	if debug {
		spew.Fdump(os.Stderr, root)
	}

	var opts []codec.Option
	if round {
		opts = append(opts, codec.WithPreprocessor(normalize.NewRounder().Process))
	}
	if indent {
		opts = append(opts, codec.WithIndent("", "  "))
	}

	out, err := codec.Serialize(root, opts...)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// retype parses the document and assigns primitive leaf types, preferring
// schema-driven typing when an XSD was given.
func retype(input []byte, schemaPath string, cfg *Config) (map[string]any, error) {
	if schemaPath == "" {
		st := typing.NewSimpleTyping(cfg.SkipKeys...)
		return codec.Deserialize(input, codec.WithPostprocessor(st.Process))
	}

	schemaDoc, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}
	schemaTree, err := codec.Deserialize(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", schemaPath, err)
	}

	ix := schema.NewIndexWithNamespace(cfg.Namespace)
	ix.Flatten(schemaTree, "")

	root, err := codec.Deserialize(input)
	if err != nil {
		return nil, err
	}

	ex := typing.NewExtractor(ix)
	ex.ExtractTyped(root)
	for _, w := range ex.Diagnostics().Warnings {
		fmt.Fprintln(os.Stderr, w.Format())
	}
	return root, nil
}
