// Package banner holds the placeholder report printed by bida and renders it.
package banner

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed report.yaml
var reportYAML []byte

const featureIndent = "  "

type Report struct {
	Title           string      `yaml:"title"`
	RuleWidth       int         `yaml:"ruleWidth"`
	Notice          string      `yaml:"notice"`
	StackHeading    string      `yaml:"stackHeading"`
	Stack           []StackItem `yaml:"stack"`
	FeaturesHeading string      `yaml:"featuresHeading"`
	Features        []string    `yaml:"features"`
}

type StackItem struct {
	Layer      string `yaml:"layer"`
	Technology string `yaml:"technology"`
}

var (
	loadOnce sync.Once
	loaded   Report
	loadErr  error
)

// Load returns the report compiled into the binary.
func Load() (Report, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(reportYAML)
	})
	return loaded, loadErr
}

func Parse(data []byte) (Report, error) {
	var r Report
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return Report{}, errors.New("parse report: empty document")
		}
		return Report{}, fmt.Errorf("parse report: %w", err)
	}
	if err := r.validate(); err != nil {
		return Report{}, fmt.Errorf("invalid report: %w", err)
	}
	return r, nil
}

func (r Report) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.RuleWidth <= 0 {
		return fmt.Errorf("ruleWidth must be positive, got %d", r.RuleWidth)
	}
	if len(r.Features) == 0 {
		return errors.New("at least one feature is required")
	}
	return nil
}

// Lines renders the report without trailing newlines. The blank line before
// the features heading is an empty string.
func (r Report) Lines() []string {
	lines := make([]string, 0, 6+len(r.Stack)+len(r.Features))
	lines = append(lines,
		r.Title,
		strings.Repeat("=", r.RuleWidth),
		r.Notice,
		r.StackHeading,
	)
	for _, item := range r.Stack {
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Layer, item.Technology))
	}
	lines = append(lines, "", r.FeaturesHeading)
	for _, feature := range r.Features {
		lines = append(lines, featureIndent+feature)
	}
	return lines
}

func (r Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// WriteTo writes each line followed by a newline and flushes before returning.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range r.Lines() {
		written, err := fmt.Fprintln(bw, line)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("write banner: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("write banner: %w", err)
	}
	return n, nil
}
