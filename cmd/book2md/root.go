// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nicholasgasior/book2md"
	"github.com/nicholasgasior/book2md/internal/output"
	"github.com/nicholasgasior/book2md/internal/render"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book2md <input>",
		Short: "Convert EPUB and DOCX documents to Markdown",
		Long: `book2md converts an e-book or word-processing document into Markdown.

By default every chapter is written to its own file inside a folder named after
the input, together with a README.md holding the metadata and a table of
contents. Images are extracted to an images/ directory next to the Markdown.

Every flag can also be set in a book2md.yaml (or .json, .toml) file in the
working directory or through BOOK2MD_* environment variables.

Examples:
  book2md novel.epub
  book2md report.docx -o out/report --no-images
  book2md novel.epub --single -o novel.md`,
		Args:         cobra.ExactArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE:         runConvert,
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output folder, or file with --single (default: input name)")
	f.BoolP("single", "s", false, "Write a single Markdown file instead of a folder")
	f.Bool("no-images", false, "Do not extract images")
	f.Bool("keep-data-uris", false, "Keep full base64-encoded data URIs")
	f.String("media-prefix", render.DefaultMediaPrefix, "Package directory DOCX image targets are relative to")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.String("config", "", "Config file (default: ./book2md.{yaml,json,toml})")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	input := args[0]
	outPath, err := output.ResolvePath(input, cfg.Output, cfg.Single)
	if err != nil {
		return err
	}

	opts := []book2md.Option{
		book2md.WithLogger(logger),
		book2md.WithKeepDataURIs(cfg.KeepDataURIs),
		book2md.WithMediaPrefix(cfg.MediaPrefix),
	}
	if cfg.NoImages {
		opts = append(opts, book2md.WithoutImages())
	}

	result, err := book2md.New(opts...).ConvertFile(input)
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	chapters := make([]output.Chapter, len(result.Chapters))
	for i, ch := range result.Chapters {
		chapters[i] = output.Chapter{Title: ch.Title, Markdown: ch.Markdown}
	}
	images := make([]output.Image, len(result.Images))
	for i, img := range result.Images {
		images[i] = output.Image{Path: img.Path, Data: img.Data}
	}

	w := output.New(outPath, cfg.Single)
	if err := w.Write(book2md.FormatMetadata(result.Metadata), chapters, images); err != nil {
		return err
	}

	logger.Debug("wrote output",
		zap.String("path", outPath),
		zap.Bool("single", cfg.Single),
		zap.Int("chapters", len(chapters)),
		zap.Int("images", len(images)))

	fmt.Fprintln(cmd.ErrOrStderr(), summary(len(chapters), len(images), outPath))
	return nil
}

// summary formats the line printed after a successful conversion.
func summary(chapters, images int, path string) string {
	s := fmt.Sprintf("Converted %d chapter%s", chapters, plural(chapters))
	if images > 0 {
		s += fmt.Sprintf(" and %d image%s", images, plural(images))
	}
	return s + " to " + path
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableStacktrace = true
	}
	return cfg.Build()
}
