package minify

import (
	"strings"

	"github.com/dchest/cssmin"
)

type cssminEngine struct{}

func (cssminEngine) Name() string { return EngineCSSMin }

// Minify ignores targets and features and refuses nested input, like tdewolff
func (cssminEngine) Minify(text, _ string, _ Options) (string, error) {
	if err := checkFlat(EngineCSSMin, text); err != nil {
		return "", err
	}
	return restorePlaceholderCase(strings.TrimSpace(string(cssmin.Minify([]byte(text))))), nil
}
