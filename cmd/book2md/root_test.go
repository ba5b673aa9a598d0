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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><head><title>Field Notes</title></head>
<body><h1>Hello</h1><p>World</p></body></html>`

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "notes.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	err := cmd.Execute()
	return stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConvertToFolder(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	out := filepath.Join(dir, "out")

	stderr, err := execute(t, input, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converted 1 chapter to "+out)

	assert.Equal(t,
		"# Field Notes\n\n\n---\n\n## Table of Contents\n\n1. [Field Notes](chapter-01.md)\n\n",
		readFile(t, filepath.Join(out, "README.md")))
	assert.Contains(t, readFile(t, filepath.Join(out, "chapter-01.md")), "# Hello")
}

func TestConvertSingleFromEnv(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	out := filepath.Join(dir, "book.md")
	t.Setenv("BOOK2MD_SINGLE", "true")

	_, err := execute(t, input, "--output", out)
	require.NoError(t, err)

	got := readFile(t, out)
	assert.Contains(t, got, "# Field Notes\n")
	assert.Contains(t, got, "# Hello")
}

func TestConvertWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	out := filepath.Join(dir, "from-config.md")
	cfgPath := filepath.Join(dir, "book2md.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("single: true\noutput: "+out+"\n"), 0o644))

	_, err := execute(t, input, "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestConvertUnsupported(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("plain"), 0o644))

	stderr, err := execute(t, input, "-o", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, stderr, "unsupported format")
}

func TestConvertRequiresInput(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	_, err := execute(t, input, "--config", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Converted 1 chapter to out", summary(1, 0, "out"))
	assert.Equal(t, "Converted 3 chapters and 1 image to out", summary(3, 1, "out"))
	assert.Equal(t, "Converted 0 chapters and 2 images to a.md", summary(0, 2, "a.md"))
}
