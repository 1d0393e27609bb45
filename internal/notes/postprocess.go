package notes

import (
	"strings"

	"github.com/lithammer/dedent"
)

// PostProcess removes common leading indentation, then replaces every '*'
// with a space so markdown emphasis does not leak into the plain-text file.
func PostProcess(text string) string {
	return strings.ReplaceAll(dedent.Dedent(text), "*", " ")
}
