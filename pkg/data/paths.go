package data

import (
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// DetectType classifies a file path by extension. The second return is false
// for anything that is neither a PDF nor a supported raster image.
func DetectType(path string) (EntryType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return TypePDF, true
	case imageExts[ext]:
		return TypeImage, true
	default:
		return "", false
	}
}
