package utils

import "strings"

// FileExtension returns the lowercased text after the last dot of name, or ""
// when name has no dot or ends with one.
func FileExtension(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot == -1 || dot == len(name)-1 {
		return ""
	}

	return strings.ToLower(name[dot+1:])
}
