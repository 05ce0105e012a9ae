package service

import (
	"encoding/base64"
	"io"
	"log"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/tastenamibia/recipe-catalog/backend/internal/types"
)

// MaxImageSize is the largest accepted upload, 5 MiB
const MaxImageSize = 5 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

var urlValidator = validator.New()

// encodeImage checks an upload and turns it into an embedded blob:
// "data:<mime>;base64,<payload>". The MIME type is sniffed from the bytes.
func encodeImage(upload *types.ImageUpload) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(upload.Filename), "."))
	if !allowedImageExtensions[ext] {
		return "", newValidationError(UnsupportedImageType, "recipe_image", "Invalid file type. Only JPG, PNG, and GIF are allowed.")
	}
	if upload.Size > MaxImageSize {
		return "", imageTooLarge()
	}

	data, err := readUpload(upload)
	if err != nil {
		log.Printf("[ImageService] failed to read upload %q: %v", upload.Filename, err)
		return "", newValidationError(ImageUnreadable, "recipe_image", "Failed to read uploaded image")
	}
	// the declared size is client-supplied; the bytes are what count
	if len(data) > MaxImageSize {
		return "", imageTooLarge()
	}

	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func readUpload(upload *types.ImageUpload) ([]byte, error) {
	if upload.Open == nil {
		return nil, io.ErrUnexpectedEOF
	}
	rc, err := upload.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return io.ReadAll(io.LimitReader(rc, MaxImageSize+1))
}

func imageTooLarge() *ValidationError {
	return newValidationError(ImageTooLarge, "recipe_image", "File size too large. Maximum 5MB allowed.")
}

// validImageURL accepts absolute URLs with both a scheme and a host
func validImageURL(raw string) bool {
	if urlValidator.Var(raw, "url") != nil {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
