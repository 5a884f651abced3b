package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.English)

func Lowered(s string) string {
	return lowerCaser.String(strings.TrimSpace(s))
}
