package utils

import "strings"

var allowedExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "pdf": {},
	"doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "txt": {},
	"js": {}, "py": {}, "html": {}, "css": {}, "mp3": {}, "mp4": {},
}

// AllowedFile reports whether a file name carries an extension the chat
// accepts for image/file messages.
func AllowedFile(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[i+1:])]
	return ok
}
