package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/helpers/storage"
)

type UploadController struct {
	Store *storage.LocalStore
	Log   *zap.Logger
}

func NewUploadController(s *storage.LocalStore, log *zap.Logger) *UploadController {
	return &UploadController{Store: s, Log: log}
}

// 🟢 POST /api/upload (multipart: file, fileName opsional)
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File wajib diisi (field: file)")
	}
	if fh.Size > storage.MaxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5 MB")
	}

	name := c.FormValue("fileName")
	if name == "" {
		name = fh.Filename
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca")
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, storage.MaxUploadSize+1))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File tidak bisa dibaca")
	}

	saved, err := ctl.Store.Save(c.UserContext(), name, data)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "Format file tidak didukung (pakai jpg/png/webp/pdf)")
		}
		return err
	}
	ctl.Log.Info("lampiran tersimpan", zap.String("path", saved.FilePath), zap.Int("size", saved.Size))
	return helper.JsonCreated(c, "File berhasil diunggah", saved)
}
