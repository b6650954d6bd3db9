package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// selectLabelsFile asks for a text file. An empty path means the user
// cancelled.
func selectLabelsFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Select Labels"),
		zenity.FileFilters{{
			Name:     "Text Files",
			Patterns: []string{"*.txt"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func showError(msg string) {
	_ = zenity.Error(msg, zenity.Title("Cannot load labels"), zenity.ErrorIcon)
}
