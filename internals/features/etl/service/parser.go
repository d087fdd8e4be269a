package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/xuri/excelize/v2"
)

// FileKind: format fisik file import.
type FileKind string

const (
	FileKindCSV   FileKind = "csv"
	FileKindExcel FileKind = "excel"
	FileKindJSON  FileKind = "json"
)

// DetectFileKind memetakan ekstensi ke format parser. Ekstensi di luar
// daftar ditolak sinkron, sebelum job dibuat.
func DetectFileKind(fileName string) (FileKind, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		return FileKindCSV, nil
	case ".xlsx", ".xls":
		return FileKindExcel, nil
	case ".json":
		return FileKindJSON, nil
	default:
		return "", fmt.Errorf("format file tidak didukung: %s", filepath.Ext(fileName))
	}
}

// ParseRows membaca seluruh file jadi baris key→value dengan header
// dinormalisasi lowercase. Nilai selalu string; konversi tipe terjadi
// di loader per kolom.
func ParseRows(r io.Reader, kind FileKind) ([]map[string]string, error) {
	switch kind {
	case FileKindCSV:
		return parseCSV(r)
	case FileKindExcel:
		return parseExcel(r)
	case FileKindJSON:
		return parseJSON(r)
	default:
		return nil, fmt.Errorf("file kind tidak dikenal: %s", kind)
	}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("baca header CSV: %w", err)
	}
	for i := range header {
		header[i] = normalizeHeader(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("baca baris CSV: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseExcel(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("buka file Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	// Sheet pertama saja, konsisten sama template export
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("baca sheet: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = normalizeHeader(h)
	}

	var rows []map[string]string
	for _, rec := range raw[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseJSON(r io.Reader) ([]map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("baca file JSON: %w", err)
	}

	var records []map[string]any
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse JSON array: %w", err)
	}

	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := make(map[string]string, len(rec))
		for k, v := range rec {
			if v == nil {
				continue
			}
			row[normalizeHeader(k)] = strings.TrimSpace(fmt.Sprintf("%v", v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
