// Command draftify converts HTML or Markdown into Draft.js raw content.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/riverfjs/draftify-go"
)

const version = "0.1.0"

// CLI defines the command-line interface using Kong
type CLI struct {
	Quiet bool `name:"quiet" short:"q" help:"Do not print warnings"`

	Convert ConvertCmd `cmd:"" help:"Convert markup to Draft.js raw JSON"`
	Stats   StatsCmd   `cmd:"" help:"Print block, entity and character counts"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// InputFlags are shared by commands that read and convert markup.
type InputFlags struct {
	Input    string `arg:"" optional:"" default:"-" help:"Input file, - for stdin"`
	Strict   bool   `name:"strict" short:"s" help:"Fail on structural violations instead of skipping"`
	FrontEnd string `name:"front-end" short:"f" enum:"scanner,html,markdown" default:"scanner" help:"Parser: scanner, html, markdown"`
	ImageDir string `name:"image-dir" type:"path" help:"Fill missing image sizes from files under this directory"`
}

func (f *InputFlags) read(stdin io.Reader) (string, error) {
	if f.Input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(f.Input)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func (f *InputFlags) options() []draftify.Option {
	opts := []draftify.Option{
		draftify.WithStrict(f.Strict),
		draftify.WithFrontEnd(frontEnds[f.FrontEnd]),
	}
	if f.ImageDir != "" {
		opts = append(opts, draftify.WithImageDir(f.ImageDir))
	}
	return opts
}

var frontEnds = map[string]draftify.FrontEnd{
	"scanner":  draftify.FrontEndScanner,
	"html":     draftify.FrontEndHTML,
	"markdown": draftify.FrontEndMarkdown,
}

func (f *InputFlags) convert(stdin io.Reader, extra ...draftify.Option) (*draftify.Document, error) {
	content, err := f.read(stdin)
	if err != nil {
		return nil, err
	}
	doc, err := draftify.Draftify(content, append(f.options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", f.Input, err)
	}
	return doc, nil
}

// ConvertCmd converts markup and prints the raw JSON
type ConvertCmd struct {
	InputFlags

	Keys   string `name:"keys" short:"k" enum:"empty,random" default:"empty" help:"Block keys: empty, random"`
	Indent int    `name:"indent" default:"2" help:"JSON indent width, 0 for compact output"`
}

func (c *ConvertCmd) Run(ctx *kong.Context, stdin io.Reader) error {
	var opts []draftify.Option
	if c.Keys == "random" {
		opts = append(opts, draftify.WithKeyGenerator(draftify.RandomKey))
	}
	doc, err := c.convert(stdin, opts...)
	if err != nil {
		return err
	}
	raw, err := doc.JSON(strings.Repeat(" ", c.Indent))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err = fmt.Fprintln(ctx.Stdout, string(raw))
	return err
}

// StatsCmd prints a summary of the converted document
type StatsCmd struct {
	InputFlags
}

func (s *StatsCmd) Run(ctx *kong.Context, stdin io.Reader) error {
	var warnings []draftify.Warning
	doc, err := s.convert(stdin, draftify.WithWarningHandler(func(w draftify.Warning) {
		warnings = append(warnings, w)
	}))
	if err != nil {
		return err
	}

	byType := make(map[string]int)
	for _, b := range doc.Blocks {
		byType[b.Type]++
	}
	fmt.Fprintf(ctx.Stdout, "Blocks:     %d\n", len(doc.Blocks))
	for t, n := range byType {
		fmt.Fprintf(ctx.Stdout, "  %-22s %d\n", t, n)
	}
	fmt.Fprintf(ctx.Stdout, "Entities:   %d\n", len(doc.EntityMap))
	fmt.Fprintf(ctx.Stdout, "Characters: %d\n", draftify.CountText(doc))
	fmt.Fprintf(ctx.Stdout, "Warnings:   %d\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(ctx.Stdout, "  - %s\n", w)
	}
	return nil
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run(ctx *kong.Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "draftify version %s\n", version)
	return err
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("draftify"),
		kong.Description("Convert HTML or Markdown into Draft.js raw content"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if cli.Quiet {
		draftify.SetLogger(log.New(io.Discard, "", 0))
	}

	err = ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
