package service

import (
	"fmt"
	"sort"

	"eduanalytics_backend/internals/features/etl/dto"
)

// ValidateRows memeriksa hasil parse tanpa menulis apa pun ke warehouse.
// File kosong itu error; kolom wajib yang hilang dilaporkan sebagai
// warning karena baris tetap bisa diproses sebagian (baris gagal cuma
// dihitung).
func ValidateRows(loader Loader, fileName string, kind FileKind, rows []map[string]string) dto.ValidationResult {
	res := dto.ValidationResult{
		FileName: fileName,
		FileKind: string(kind),
		RowCount: len(rows),
		Columns:  []string{},
		Issues:   []dto.ValidationIssue{},
		Valid:    true,
	}

	if len(rows) == 0 {
		res.Valid = false
		res.Issues = append(res.Issues, dto.ValidationIssue{
			Level:   "error",
			Message: "file kosong, tidak ada baris data",
		})
		return res
	}

	present := map[string]bool{}
	for col := range rows[0] {
		present[col] = true
		res.Columns = append(res.Columns, col)
	}
	sort.Strings(res.Columns)

	for _, col := range loader.RequiredColumns() {
		if !present[col] {
			res.Issues = append(res.Issues, dto.ValidationIssue{
				Level:   "warning",
				Message: fmt.Sprintf("kolom wajib %s tidak ditemukan di header", col),
			})
		}
	}
	return res
}

// DataSources mendeskripsikan semua jenis import yang tersedia.
func DataSources() []dto.DataSourceInfo {
	descriptions := map[JobKind]string{
		JobKindStudent:     "Import data master student ke dim_student",
		JobKindCourse:      "Import katalog course ke dim_course (lookup department by code)",
		JobKindPerformance: "Import nilai akhir ke student_performance_fact (lookup student/course/instructor)",
	}

	out := make([]dto.DataSourceInfo, 0, len(SupportedKinds()))
	for _, kind := range SupportedKinds() {
		loader, err := LoaderFor(string(kind))
		if err != nil {
			continue
		}
		out = append(out, dto.DataSourceInfo{
			Kind:            string(kind),
			Description:     descriptions[kind],
			RequiredColumns: loader.RequiredColumns(),
			OptionalColumns: loader.OptionalColumns(),
			FileFormats:     []string{"csv", "txt", "xlsx", "xls", "json"},
		})
	}
	return out
}
