package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // registrasi decoder BMP

	"laporkampus_backend/internals/configs"
)

var ErrUnsupportedImage = errors.New("format gambar tidak didukung")

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW        int     // batas lebar (resize keep-aspect)
	MaxH        int     // batas tinggi
	Quality     float32 // dipakai kalau TargetKB = 0
	TargetKB    int     // target ukuran; 0 = non-aktif
	MinQ        float32 // batas bawah binary search quality
	MaxQ        float32
	ToleranceKB int
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:        configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:        configs.GetEnvInt("IMAGE_WEBP_MAX_H", 1600),
		Quality:     float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80)),
		TargetKB:    configs.GetEnvInt("IMAGE_WEBP_TARGET_KB", 0),
		MinQ:        45,
		MaxQ:        85,
		ToleranceKB: 8,
	}
}

// IsConvertible: hanya foto (jpeg/png/bmp/webp) yang di-recompress ke WebP.
func IsConvertible(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/bmp", "image/webp":
		return true
	}
	return false
}

// DecodeImage decode + koreksi orientasi EXIF (foto dari HP sering miring).
func DecodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("file kosong")
	}
	if !IsConvertible(http.DetectContentType(all)) {
		return nil, ErrUnsupportedImage
	}
	img, err := imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode gambar: %w", err)
	}
	return img, nil
}

// Downscale memperkecil agar muat di maxW×maxH. Gambar kecil tidak diperbesar.
func Downscale(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	if (maxW <= 0 || b.Dx() <= maxW) && (maxH <= 0 || b.Dy() <= maxH) {
		return src
	}
	if maxW <= 0 {
		maxW = b.Dx()
	}
	if maxH <= 0 {
		maxH = b.Dy()
	}
	return imaging.Fit(src, maxW, maxH, imaging.CatmullRom)
}

/* =======================================================================
   Encode WebP
   - TargetKB > 0 → binary search quality sampai <= target+tol
   - TargetKB = 0 → encode sekali dengan Quality
======================================================================= */

func EncodeWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(q)
	}

	target := (opt.TargetKB + opt.ToleranceKB) * 1024
	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 || high < low {
		high = 85
	}

	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q // masih muat → coba quality lebih tinggi
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(opt.MinQ)
	}
	return best, nil
}

// ConvertToWebP: decode → downscale → encode webp.
func ConvertToWebP(all []byte, opt WebPOptions) ([]byte, error) {
	img, err := DecodeImage(all)
	if err != nil {
		return nil, err
	}
	return EncodeWebP(Downscale(img, opt.MaxW, opt.MaxH), opt)
}
