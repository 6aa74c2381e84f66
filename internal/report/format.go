package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Formatter renders diagnostics.
type Formatter interface {
	Format(diags []Diagnostic) (string, error)
}

// Output format names.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// NewFormatter returns the formatter for name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or table)", name)
	}
}

type TextFormatter struct{}

func (f *TextFormatter) Format(diags []Diagnostic) (string, error) {
	var sb strings.Builder

	for _, d := range diags {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s (%s)\n", d.File, d.Line, d.Column, d.Severity, d.Message, d.Rule)
	}

	if len(diags) > 0 {
		c := Count(diags)
		fmt.Fprintf(&sb, "\n✖ %d problems (%d errors, %d warnings)\n", len(diags), c.Errors, c.Warnings)
	}

	return sb.String(), nil
}

type JSONFormatter struct{}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

type jsonResult struct {
	Rule      string            `json:"rule"`
	Severity  string            `json:"severity"`
	MessageID string            `json:"messageId,omitempty"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	Location  jsonLocation      `json:"location"`
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

func (f *JSONFormatter) Format(diags []Diagnostic) (string, error) {
	output := jsonOutput{
		Results: make([]jsonResult, 0, len(diags)),
	}

	for _, d := range diags {
		output.Results = append(output.Results, jsonResult{
			Rule:      d.Rule,
			Severity:  d.Severity.String(),
			MessageID: d.MessageID,
			Message:   d.Message,
			Data:      d.Data,
			Location: jsonLocation{
				File:   d.File,
				Line:   d.Line,
				Column: d.Column,
			},
		})
	}

	c := Count(diags)
	output.Summary = jsonSummary{Total: len(diags), Errors: c.Errors, Warnings: c.Warnings}

	bytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}

	return string(bytes) + "\n", nil
}

// TableFormatter prints per-file totals.
type TableFormatter struct{}

func (f *TableFormatter) Format(diags []Diagnostic) (string, error) {
	if len(diags) == 0 {
		return "", nil
	}

	var (
		files  []string
		counts = make(map[string]*Counts)
	)
	for _, d := range diags {
		c, ok := counts[d.File]
		if !ok {
			c = &Counts{}
			counts[d.File] = c
			files = append(files, d.File)
		}
		switch d.Severity {
		case SeverityError:
			c.Errors++
		case SeverityWarning:
			c.Warnings++
		}
	}

	var sb strings.Builder

	table := tablewriter.NewWriter(&sb)
	table.Header("File", "Errors", "Warnings")
	for _, file := range files {
		c := counts[file]
		if err := table.Append(file, strconv.Itoa(c.Errors), strconv.Itoa(c.Warnings)); err != nil {
			return "", fmt.Errorf("render table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}

	return sb.String(), nil
}
