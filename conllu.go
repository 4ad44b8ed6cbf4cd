package conllu

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the filename extension of CoNLL-U files.
const Ext = ".conllu"

// Corrector applies CorrectForm annotations to CoNLL-U content.
type Corrector struct {
	suffix string
	logger *slog.Logger
}

// New creates a Corrector.
func New(opts ...Option) *Corrector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Corrector{
		suffix: cfg.suffix,
		logger: cfg.logger,
	}
}

// Correct transforms the full content of one file. Two passes: the
// first segments sentence blocks, collects each block's corrections,
// and regenerates its "# text = " line; the second overwrites the form
// column of every token line carrying a CorrectForm entry. Malformed
// lines are not errors and pass through unchanged.
func (c *Corrector) Correct(data []byte) ([]byte, Report) {
	var rep Report

	blocks := segment(splitLines(string(data)), &rep)

	var out strings.Builder
	out.Grow(len(data))
	for _, block := range blocks {
		for _, line := range block {
			out.WriteString(rewriteForm(line, &rep))
		}
	}
	return []byte(out.String()), rep
}

// ProcessFile reads in, corrects it, and writes the result to out.
func (c *Corrector) ProcessFile(in, out string) (Report, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return Report{}, fmt.Errorf("read file: %w", err)
	}

	corrected, rep := c.Correct(data)

	if err := os.WriteFile(out, corrected, 0o644); err != nil {
		return Report{}, fmt.Errorf("write file: %w", err)
	}
	rep.Files = 1
	return rep, nil
}

// ProcessDir corrects every .conllu file directly under dir, writing
// each result next to its input with the output suffix inserted into
// the name (sample.conllu -> sample_updated.conllu). Inputs are left
// untouched; existing outputs are overwritten. Subdirectories are not
// traversed. The first I/O failure aborts the run.
func (c *Corrector) ProcessDir(dir string) (Report, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Report{}, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return Report{}, fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Report{}, fmt.Errorf("read dir: %w", err)
	}

	var total Report
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}

		in := filepath.Join(dir, entry.Name())
		out := filepath.Join(dir, c.outputName(entry.Name()))

		c.logger.Info("processing file", "name", entry.Name())
		rep, err := c.ProcessFile(in, out)
		if err != nil {
			return total, fmt.Errorf("processing %s: %w", entry.Name(), err)
		}
		total.Merge(rep)
		c.logger.Info("wrote corrected file", "path", out)
	}

	return total, nil
}

// outputName derives the output filename. The replacement is a global
// substring replace, so a name containing ".conllu" mid-name has every
// occurrence rewritten; kept for compatibility with prior runs.
func (c *Corrector) outputName(name string) string {
	return strings.ReplaceAll(name, Ext, c.suffix+Ext)
}
