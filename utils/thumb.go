package utils

import (
	"path/filepath"

	"github.com/disintegration/imaging"
)

// CreateThumb writes a fitted thumbnail next to the original image as
// <id>_thumb.jpg.
func CreateThumb(id, dir, ext string, width, height int) error {
	src, err := imaging.Open(filepath.Join(dir, id+ext))
	if err != nil {
		return err
	}
	thumb := imaging.Fit(src, width, height, imaging.Lanczos)
	return imaging.Save(thumb, filepath.Join(dir, id+"_thumb.jpg"))
}
