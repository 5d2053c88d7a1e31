package app

import (
	"errors"

	"github.com/ncruces/zenity"
)

// pickIcon asks the user for an image file. ok is false when the dialog was
// cancelled.
func pickIcon() (path string, ok bool, err error) {
	path, err = zenity.SelectFile(
		zenity.Title("Choose Center Icon"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, err
	}
	return path, true, nil
}
