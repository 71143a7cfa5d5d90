package domain

import (
	"strings"
)

// NormalizeCategory prepares a category label for storage and filtering:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeCategory(category string) string {
	return strings.Join(strings.Fields(strings.ToLower(category)), " ")
}
