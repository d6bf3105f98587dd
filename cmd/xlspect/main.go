// Package main provides the CLI entry point for xlspect.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xlspect/xlspect/pkg/xlspect"
	"github.com/xlspect/xlspect/pkg/xlspect/output"
)

var (
	outputPath          string
	pretty              bool
	sheetName           string
	exportSheet         string
	exportFull          string
	timeout             time.Duration
	sampleSize          int
	complexityThreshold int
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlspect [input.xlsx]",
		Short: "Inspect spreadsheet workbooks",
		Long: `xlspect loads an Excel workbook (.xls, .xlsx, .xlsm), reports per-sheet
tabular views, formula cells, and complexity metrics as JSON, and can
re-encode the workbook (macros preserved) or export a single sheet's values.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Restrict the report to one sheet")
	rootCmd.Flags().StringVar(&exportSheet, "export-sheet", "", "Export the named sheet's values to the given .xlsx path (NAME=PATH)")
	rootCmd.Flags().StringVar(&exportFull, "export-full", "", "Re-encode the full workbook to the given path")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Wall-clock bound for loading the workbook")
	rootCmd.Flags().IntVar(&sampleSize, "sample-size", 0, "Per-column type inference sample size (default 10)")
	rootCmd.Flags().IntVar(&complexityThreshold, "complexity-threshold", 0, "Formula length counted as complex (default 50)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := xlspect.Options{
		BookName:            filepath.Base(inputPath),
		SampleSize:          sampleSize,
		ComplexityThreshold: complexityThreshold,
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	session, err := xlspect.NewSession(ctx, data, opts)
	if err != nil {
		var loadErr *xlspect.LoadError
		if errors.As(err, &loadErr) {
			return fmt.Errorf("cannot load %s: %w", inputPath, loadErr)
		}
		return err
	}

	for _, warning := range session.Warnings() {
		log.WithFields(logrus.Fields{
			"sheet": warning.SheetName,
			"code":  warning.Code,
		}).Warn(warning.Detail)
	}

	if exportFull != "" {
		if err := exportFullWorkbook(session, exportFull); err != nil {
			return err
		}
	}
	if exportSheet != "" {
		if err := exportSheetValues(session, exportSheet); err != nil {
			return err
		}
	}
	if exportFull != "" || exportSheet != "" {
		return nil
	}

	return writeReport(session)
}

func writeReport(session *xlspect.Session) error {
	report := session.Report()

	var jsonData []byte
	var err error
	if sheetName != "" {
		found := false
		for i := range report.Sheets {
			if report.Sheets[i].Name != sheetName {
				continue
			}
			jsonData, err = output.SheetReportToJSON(&report.Sheets[i], pretty)
			found = true
			break
		}
		if !found {
			return fmt.Errorf("sheet not found: %s", sheetName)
		}
	} else {
		jsonData, err = output.ReportToJSON(report, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func exportFullWorkbook(session *xlspect.Session, path string) error {
	if session.HasMacros() && filepath.Ext(path) != ".xlsm" {
		log.Warnf("workbook carries macros; %s should use the .xlsm extension", path)
	}
	data, err := session.SerializeFull()
	if err != nil {
		return fmt.Errorf("export workbook: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.WithField("path", path).Info("workbook exported")
	return nil
}

// exportSheetValues parses a NAME=PATH spec and writes the sheet's
// values-only export.
func exportSheetValues(session *xlspect.Session, spec string) error {
	name, path, err := splitExportSpec(spec)
	if err != nil {
		return err
	}
	data, err := session.SerializeSheet(name)
	if err != nil {
		return fmt.Errorf("export sheet %q: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"sheet": name, "path": path}).Info("sheet exported")
	return nil
}

func splitExportSpec(spec string) (string, string, error) {
	for i := 0; i < len(spec); i++ {
		if spec[i] == '=' && i > 0 && i < len(spec)-1 {
			return spec[:i], spec[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("invalid --export-sheet spec %q (want NAME=PATH)", spec)
}
