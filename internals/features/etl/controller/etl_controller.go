package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/configs"
	"eduanalytics_backend/internals/features/etl/dto"
	"eduanalytics_backend/internals/features/etl/model"
	"eduanalytics_backend/internals/features/etl/service"
	feedbackService "eduanalytics_backend/internals/features/feedback/service"
	helper "eduanalytics_backend/internals/helpers"
)

const uploadDir = "./uploads"

type ETLController struct {
	DB     *gorm.DB
	Runner *service.Runner
}

func NewETLController(db *gorm.DB) *ETLController {
	return &ETLController{DB: db, Runner: service.NewRunner(db)}
}

// insideUploadDir: path harus resolve ke dalam direktori upload.
// Prefix-match saja tidak cukup (uploads_evil/ lolos), jadi pakai
// relasi path.
func insideUploadDir(path string) bool {
	rel, err := filepath.Rel(uploadDir, filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func extensionAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range configs.AllowedFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// saveUpload menyimpan multipart file ke disk dengan nama unik.
func (ctl *ETLController) saveUpload(c *fiber.Ctx) (fileName, filePath string, err error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", "", fmt.Errorf("field file wajib diisi")
	}
	if !extensionAllowed(fh.Filename) {
		return "", "", fmt.Errorf("format file tidak didukung: %s", filepath.Ext(fh.Filename))
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", "", err
	}
	dest := filepath.Join(uploadDir,
		fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, dest); err != nil {
		return "", "", err
	}
	return fh.Filename, dest, nil
}

func parseFile(fileName, filePath string) (service.FileKind, []map[string]string, error) {
	kind, err := service.DetectFileKind(fileName)
	if err != nil {
		return "", nil, err
	}
	f, err := os.Open(filePath)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	rows, err := service.ParseRows(f, kind)
	return kind, rows, err
}

// POST /api/v1/etl/upload (multipart: file + kind)
// Ekstensi salah atau kind tidak dikenal ditolak sinkron; sisanya jalan
// sebagai job async.
func (ctl *ETLController) Upload(c *fiber.Ctx) error {
	loader, err := service.LoaderFor(c.FormValue("kind"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fileName, filePath, err := ctl.saveUpload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	_, rows, err := parseFile(fileName, filePath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("gagal parse file: %v", err))
	}

	job, err := ctl.Runner.Start(loader.Kind(), fileName, filePath, rows, func(row map[string]string) error {
		return loader.LoadRow(ctl.DB, row)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat import job")
	}

	feedbackService.LogEvent(ctl.DB, "info", "etl", "import job dimulai", map[string]any{
		"job_id":     job.ETLJobID.String(),
		"kind":       job.ETLJobKind,
		"file_name":  job.ETLJobFileName,
		"total_rows": job.ETLJobTotalRows,
	})
	return helper.JsonCreated(c, "Import job dimulai", job)
}

// POST /api/v1/etl/process
// Varian untuk file yang sudah ada di server (hasil upload sebelumnya).
func (ctl *ETLController) Process(c *fiber.Ctx) error {
	var req dto.ProcessFileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loader, err := service.LoaderFor(req.Kind)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Path dibatasi ke direktori upload
	if !insideUploadDir(req.FilePath) {
		return helper.JsonError(c, fiber.StatusBadRequest, "file_path di luar direktori upload")
	}

	clean := filepath.Clean(req.FilePath)
	fileName := filepath.Base(clean)
	_, rows, err := parseFile(fileName, clean)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("gagal parse file: %v", err))
	}

	job, err := ctl.Runner.Start(loader.Kind(), fileName, clean, rows, func(row map[string]string) error {
		return loader.LoadRow(ctl.DB, row)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat import job")
	}
	return helper.JsonCreated(c, "Import job dimulai", job)
}

// GET /api/v1/etl/status/:id
func (ctl *ETLController) Status(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID job tidak valid")
	}
	job, err := ctl.Runner.Get(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Job tidak ditemukan")
	}
	return helper.JsonOK(c, "Status job berhasil diambil", job)
}

// GET /api/v1/etl/jobs?status=running&kind=student&limit=50
func (ctl *ETLController) Jobs(c *fiber.Ctx) error {
	var status *model.JobStatus
	if v := c.Query("status"); v != "" {
		s := model.JobStatus(v)
		status = &s
	}
	var kind *string
	if v := c.Query("kind"); v != "" {
		kind = &v
	}

	jobs, err := ctl.Runner.List(status, kind, c.QueryInt("limit", 50))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar job")
	}
	return helper.JsonOK(c, "Daftar job berhasil diambil", jobs)
}

// POST /api/v1/etl/jobs/:id/cancel
func (ctl *ETLController) Cancel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID job tidak valid")
	}
	job, err := ctl.Runner.Cancel(id)
	if err != nil {
		if job.ETLJobID == uuid.Nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Job tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	return helper.JsonOK(c, "Job dibatalkan", job)
}

// POST /api/v1/etl/validate-data (multipart: file + kind)
// Validasi saja, tidak ada job yang dibuat dan tidak ada baris yang
// ditulis.
func (ctl *ETLController) Validate(c *fiber.Ctx) error {
	loader, err := service.LoaderFor(c.FormValue("kind"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fileName, filePath, err := ctl.saveUpload(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	defer os.Remove(filePath)

	kind, rows, err := parseFile(fileName, filePath)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("gagal parse file: %v", err))
	}

	result := service.ValidateRows(loader, fileName, kind, rows)
	return helper.JsonOK(c, "Validasi selesai", result)
}

// GET /api/v1/etl/data-sources
func (ctl *ETLController) DataSources(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Data sources berhasil diambil", service.DataSources())
}

// GET /api/v1/etl/validation-rules
// Aturan kolom per jenis import, dipakai frontend buat pre-check file.
func (ctl *ETLController) ValidationRules(c *fiber.Ctx) error {
	rules := fiber.Map{}
	for _, src := range service.DataSources() {
		rules[src.Kind] = fiber.Map{
			"required_columns": src.RequiredColumns,
			"optional_columns": src.OptionalColumns,
			"file_formats":     src.FileFormats,
		}
	}
	return helper.JsonOK(c, "Validation rules berhasil diambil", rules)
}
