package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pageview-analytics/internal/app"
	"pageview-analytics/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRows = 12000 // Number of data rows in the generated export
)

var (
	paths = []string{
		"/",
		"/blog",
		"/blog/launch",
		"/app/app/app/docs/",
		"/https://www.example.com/pricing",
		"not-a-path",
	}
	queries = []string{"", "?ref=hn", "?ref=mail&utm=spring", "?ref=hn&ref=hn", "?broken&ref=ads"}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_nested_path_rollup
//
// This scenario writes a Google Analytics style export with comment banners,
// quoted thousands separators and HH:MM:SS durations, then runs a full analysis
// in process: once as a report, once as a shaped yaml tree.
//
// What it tests:
//   - CSV ingestion with comment lines and separators
//   - app/ collapsing and absolute URL stripping before insertion
//   - Rejection of URLs without a leading slash
//   - Duplicate and malformed query parameters
//   - Report and tree documents published through the output directory
//
// Expected results:
//   - The root line of the report carries the sum of views over every row with a path
//   - /app/docs and /pricing appear in the report, the raw forms do not
//   - One report and one tree document exist under the output directory
func main() {
	// these configs can be changed to run the scenario
	outputDir := ".tmp/output"  // Output directory relative to project root
	wantCleanOutputDir := true // If true, clean up the output directory before running the scenario

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	outputPath := filepath.Join(projectRoot, outputDir)

	if wantCleanOutputDir {
		fmt.Printf("Cleaning output directory: %s\n", outputPath)
		if err := os.RemoveAll(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean output directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_nested_path_rollup")
	fmt.Printf("TOTAL_ROWS: %d\n", totalRows)
	fmt.Printf("OUTPUT_PATH: %s\n", outputPath)
	fmt.Println()

	exportPath := filepath.Join(outputPath, "export.csv")
	expectedViews, err := writeExport(exportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write export: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (expected root views: %d)\n", exportPath, expectedViews)

	reportConfig := &configs.Config{
		Input:      exportPath,
		SortField:  "views",
		Descending: true,
		TreeFormat: "yaml",
		OutputDir:  outputPath,
		Log:        configs.LogConfig{Level: "info"},
	}
	reportRunID, err := runAnalysis(reportConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Report run failed: %v\n", err)
		os.Exit(1)
	}

	treeConfig := *reportConfig
	treeConfig.Visualize = true
	treeConfig.Threshold = 100
	treeConfig.MaxChildren = 3
	treeRunID, err := runAnalysis(&treeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Tree run failed: %v\n", err)
		os.Exit(1)
	}

	if err := verifyReport(filepath.Join(outputPath, "reports", reportRunID+".txt"), expectedViews); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	treePath := filepath.Join(outputPath, "trees", treeRunID+".yaml")
	if _, err := os.Stat(treePath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Tree document missing: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Report: reports/%s.txt\n", reportRunID)
	fmt.Printf("Tree: trees/%s.yaml\n", treeRunID)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// writeExport writes totalRows rows and returns the views expected at the root.
func writeExport(path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	fmt.Fprintln(file, "# ----------------------------------------")
	fmt.Fprintln(file, "# All Web Site Data")
	fmt.Fprintln(file, "# Pages")
	fmt.Fprintln(file, "# ----------------------------------------")
	fmt.Fprintln(file)

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Page", "Pageviews", "Unique Pageviews", "Avg. Time on Page", "Page Load Sample", "Avg. Page Load Time (sec)"}); err != nil {
		return 0, err
	}

	expectedViews := 0
	for i := 0; i < totalRows; i++ {
		path := paths[i%len(paths)]
		url := path + queries[(i/len(paths))%len(queries)]
		views := 1 + (i*37)%1500
		unique := views - views/4
		seconds := (i * 13) % 400
		loadSample := i % 3

		if strings.HasPrefix(path, "/") {
			expectedViews += views
		}

		record := []string{
			url,
			formatThousands(views),
			formatThousands(unique),
			fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60),
			strconv.Itoa(loadSample),
			fmt.Sprintf("%.2f", float64(i%50)/10),
		}
		if err := w.Write(record); err != nil {
			return 0, err
		}
	}
	w.Flush()
	return expectedViews, w.Error()
}

func formatThousands(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d,%03d", n/1000, n%1000)
}

func runAnalysis(config *configs.Config) (string, error) {
	application, err := app.New(config)
	if err != nil {
		return "", err
	}
	defer application.Close()

	if err := application.Run(context.Background()); err != nil {
		return "", err
	}
	return application.RunID(), nil
}

func verifyReport(path string, expectedViews int) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("report missing: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("report is empty")
	}

	wantRoot := fmt.Sprintf("/: %d views,", expectedViews)
	if !strings.HasPrefix(lines[0], wantRoot) {
		return fmt.Errorf("root line %q, want prefix %q", lines[0], wantRoot)
	}

	report := strings.Join(lines, "\n")
	for _, want := range []string{"/app/docs:", "/pricing:", "?ref=hn:"} {
		if !strings.Contains(report, want) {
			return fmt.Errorf("report does not contain %q", want)
		}
	}
	for _, unwanted := range []string{"/app/app", "example.com", "not-a-path", "?broken"} {
		if strings.Contains(report, unwanted) {
			return fmt.Errorf("report contains %q", unwanted)
		}
	}
	fmt.Printf("Verified report: %d lines\n", len(lines))
	return nil
}
