package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize batas ukuran lampiran.
const MaxUploadSize = int64(5 * 1024 * 1024)

// Tipe lampiran yang diterima selain gambar.
var allowedDocs = map[string]bool{
	"application/pdf":           true,
	"text/plain; charset=utf-8": true,
}

// LocalStore menyimpan lampiran di disk dan disajikan sebagai static file.
type LocalStore struct {
	Dir          string // mis. ./public/uploads
	PublicPrefix string // mis. /uploads
	WebP         WebPOptions
	Log          *zap.Logger
	now          func() time.Time
}

func NewLocalStore(dir, publicPrefix string, log *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("buat folder upload: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalStore{
		Dir:          dir,
		PublicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		WebP:         DefaultWebPOptions(),
		Log:          log,
		now:          time.Now,
	}, nil
}

// Saved hasil simpan: path publik + tipe konten akhir.
type Saved struct {
	FilePath    string `json:"filePath"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// Save menyimpan data. Gambar foto diubah ke WebP; PDF/teks disimpan apa adanya.
func (s *LocalStore) Save(ctx context.Context, originalName string, data []byte) (Saved, error) {
	if err := ctx.Err(); err != nil {
		return Saved{}, err
	}
	if int64(len(data)) > MaxUploadSize {
		return Saved{}, fmt.Errorf("ukuran file melebihi %d MB", MaxUploadSize/(1024*1024))
	}
	ct := http.DetectContentType(data)
	ext := strings.ToLower(filepath.Ext(originalName))

	switch {
	case IsConvertible(ct):
		out, err := ConvertToWebP(data, s.WebP)
		if err != nil {
			return Saved{}, err
		}
		s.Log.Debug("gambar dikonversi ke webp", zap.Int("before", len(data)), zap.Int("after", len(out)))
		data, ct, ext = out, "image/webp", ".webp"
	case allowedDocs[ct]:
	default:
		return Saved{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
	}

	name := s.BuildName(originalName, ext)
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return Saved{}, fmt.Errorf("tulis file: %w", err)
	}
	return Saved{
		FilePath:    s.PublicPrefix + "/" + name,
		FileName:    name,
		ContentType: ct,
		Size:        len(data),
	}, nil
}

// BuildName: <slug>_<timestamp>_<acak><ext>. Nama asli tidak pernah dipakai mentah sebagai path.
func (s *LocalStore) BuildName(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	ts := s.now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s%s", Slugify(base), ts, uuid.NewString()[:8], ext)
}

func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}
