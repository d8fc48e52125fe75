// Package syllabus loads the topic catalog from spreadsheet files.
package syllabus

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rushil/prepd/internal/store"
)

// ImportConfig describes where the catalog lives in the file.
type ImportConfig struct {
	FilePath        string
	SheetName       string // Excel only
	SubjectColumn   string
	ChapterColumn   string
	TopicColumn     string
	WeightageColumn string
	StartRow        int // 1-based; rows above it are headers
}

// DefaultImportConfig is the layout prepd ships in its templates:
// Subject, Chapter, Topic, Weightage across columns A-D with one
// header row.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:        path,
		SheetName:       "Sheet1",
		SubjectColumn:   "A",
		ChapterColumn:   "B",
		TopicColumn:     "C",
		WeightageColumn: "D",
		StartRow:        2,
	}
}

// ImportResult summarizes one import run.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

const defaultWeightage = 1

// Import loads topics from a CSV or Excel file into the catalog. The
// format is picked by file extension. Rows with a missing subject or
// topic are skipped and reported, not fatal.
func Import(ctx context.Context, repo store.TopicRepo, cfg ImportConfig) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		rows, err = readCSV(cfg.FilePath)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	default:
		return nil, fmt.Errorf("unsupported syllabus format %q", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		result.TotalProcessed++

		topic, err := parseRow(row, cfg)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		created, err := repo.Upsert(ctx, topic)
		if err != nil {
			return result, fmt.Errorf("save topic %s/%s/%s: %w", topic.Subject, topic.Chapter, topic.Name, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func parseRow(row []string, cfg ImportConfig) (*store.TopicData, error) {
	subject := cell(row, cfg.SubjectColumn)
	chapter := cell(row, cfg.ChapterColumn)
	name := cell(row, cfg.TopicColumn)

	if subject == "" {
		return nil, fmt.Errorf("missing subject")
	}
	if name == "" {
		return nil, fmt.Errorf("missing topic name")
	}

	weightage := defaultWeightage
	if raw := cell(row, cfg.WeightageColumn); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 1 || w > 100 {
			return nil, fmt.Errorf("bad weightage %q", raw)
		}
		weightage = w
	}

	return &store.TopicData{
		Subject:   subject,
		Chapter:   chapter,
		Name:      name,
		Weightage: weightage,
	}, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open syllabus file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read syllabus file: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open syllabus file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// cell resolves an Excel-style column letter against a row, returning
// the trimmed value or "" when the row is too short.
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		c := column[i]
		if c < 'A' || c > 'Z' {
			return -1
		}
		index = index*26 + int(c-'A'+1)
	}
	return index - 1
}
