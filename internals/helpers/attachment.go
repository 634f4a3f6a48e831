package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	attachmentMaxSize  = 10 << 20 // 10MB
	attachmentMaxWidth = 1600
	webpQuality        = 80
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// AttachmentMeta is stored next to the complaint as a JSON blob.
type AttachmentMeta struct {
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	SizeBytes    int    `json:"size_bytes"`
}

// SaveComplaintAttachment stores an uploaded attachment under
// uploads/complaints/YYYY/MM/DD/. Image attachments are downscaled and
// re-encoded to webp; everything else is stored as-is. Returns the public
// path plus the stored metadata.
func SaveComplaintAttachment(fh *multipart.FileHeader) (string, AttachmentMeta, error) {
	meta := AttachmentMeta{
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
	}

	src, err := fh.Open()
	if err != nil {
		return "", meta, fmt.Errorf("open attachment: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(src, attachmentMaxSize+1)); err != nil {
		return "", meta, fmt.Errorf("read attachment: %w", err)
	}
	if buf.Len() > attachmentMaxSize {
		return "", meta, fmt.Errorf("attachment exceeds %dMB", attachmentMaxSize>>20)
	}

	data := buf.Bytes()
	name := sanitizeFilename(fh.Filename)

	if isImageContentType(meta.ContentType) {
		if converted, err := convertToWebp(data); err == nil {
			data = converted
			meta.ContentType = "image/webp"
			name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
		}
		// non-decodable "images" fall through and are stored untouched
	}
	meta.SizeBytes = len(data)

	now := time.Now().UTC()
	dir := filepath.Join("uploads", "complaints", now.Format("2006"), now.Format("01"), now.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", meta, fmt.Errorf("create upload dir: %w", err)
	}

	stored := fmt.Sprintf("%s_%s", uuid.NewString()[:8], name)
	full := filepath.Join(dir, stored)
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", meta, fmt.Errorf("write attachment: %w", err)
	}

	return "/" + filepath.ToSlash(full), meta, nil
}

// RemoveStoredAttachment deletes a file previously stored by
// SaveComplaintAttachment, given its public path. Only paths under the
// uploads root are touched.
func RemoveStoredAttachment(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/")
	if !strings.HasPrefix(rel, "uploads/") || strings.Contains(rel, "..") {
		return fmt.Errorf("not an upload path: %s", publicPath)
	}
	return os.Remove(filepath.FromSlash(rel))
}

// convertToWebp decodes jpeg/png, caps the width, re-encodes as webp.
func convertToWebp(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Dx() > attachmentMaxWidth {
		img = imaging.Resize(img, attachmentMaxWidth, 0, imaging.Lanczos)
	}
	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func isImageContentType(ct string) bool {
	switch strings.ToLower(strings.TrimSpace(ct)) {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

func sanitizeFilename(filename string) string {
	clean := filenameSanitizer.ReplaceAllString(filename, "_")
	if len(clean) > 80 {
		clean = clean[len(clean)-80:]
	}
	if clean == "" {
		clean = "attachment"
	}
	return clean
}
