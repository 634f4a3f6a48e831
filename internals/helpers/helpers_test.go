package helper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report_2024.pdf", sanitizeFilename("report 2024.pdf"))
	assert.Equal(t, "attachment", sanitizeFilename(""))
	// path separators collapse into a single underscore
	assert.Equal(t, ".._.jpg", sanitizeFilename("../\\.jpg"))

	long := sanitizeFilename(strings.Repeat("b", 200) + ".png")
	assert.LessOrEqual(t, len(long), 80)
	assert.True(t, strings.HasSuffix(long, ".png"), "extension survives truncation from the left")
}

func TestRemoveStoredAttachment(t *testing.T) {
	dir := filepath.Join("uploads", "complaints", "2026", "09", "01")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	full := filepath.Join(dir, "ab12cd34_photo.webp")
	require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	t.Cleanup(func() { os.RemoveAll("uploads") })

	require.NoError(t, RemoveStoredAttachment("/"+filepath.ToSlash(full)))
	_, err := os.Stat(full)
	assert.True(t, os.IsNotExist(err))

	// refuses anything outside the uploads root
	assert.Error(t, RemoveStoredAttachment("/etc/passwd"))
	assert.Error(t, RemoveStoredAttachment("/uploads/../main.go"))
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, isImageContentType("image/jpeg"))
	assert.True(t, isImageContentType(" IMAGE/PNG "))
	assert.False(t, isImageContentType("application/pdf"))
	assert.False(t, isImageContentType(""))
}

func TestValidationMap(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Title string `validate:"required,min=3"`
	}

	err := Validate.Struct(form{Email: "not-an-email", Title: "ab"})
	require.Error(t, err)

	m := ValidationMap(err)
	assert.Equal(t, []string{"must be a valid email address"}, m["email"])
	assert.Equal(t, []string{"must be at least 3 characters"}, m["title"])
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
