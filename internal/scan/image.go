package scan

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF preview dimensions
	_ "image/jpeg" // JPEG preview dimensions
	_ "image/png"  // PNG preview dimensions
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/ecoscan/internal/config"
	"github.com/Veraticus/ecoscan/internal/model"
	"github.com/gabriel-vasile/mimetype"
)

// OpenImage stats the file at path and sniffs its media type. The result
// may be a non-image; SelectFile rejects those. Quotes and a file:// prefix
// are stripped because terminals add them to dropped paths.
func OpenImage(path string) (model.ImageFile, error) {
	path = cleanDroppedPath(path)
	if path == "" {
		return model.ImageFile{}, fmt.Errorf("no path given")
	}
	path = config.ExpandPath(path)

	info, err := os.Stat(path)
	if err != nil {
		return model.ImageFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return model.ImageFile{}, fmt.Errorf("%s is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return model.ImageFile{}, fmt.Errorf("failed to detect media type: %w", err)
	}

	file := model.ImageFile{
		Path:      path,
		Name:      filepath.Base(path),
		MediaType: mt.String(),
		Size:      info.Size(),
	}

	if file.IsImage() {
		file.Width, file.Height = decodeDimensions(path)
	}
	return file, nil
}

func decodeDimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

func cleanDroppedPath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	path = strings.TrimPrefix(path, "file://")
	return strings.ReplaceAll(path, `\ `, " ")
}
