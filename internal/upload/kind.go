package upload

import (
	"path/filepath"
	"strings"
)

// Kind is the badge shown next to a selected file.
type Kind string

const (
	KindPDF   Kind = "PDF"
	KindDoc   Kind = "DOC"
	KindSheet Kind = "XLS"
	KindSlide Kind = "PPT"
	KindImage Kind = "IMG"
	KindFile  Kind = "FILE"
)

// KindOf classifies a file name by its extension, case-insensitively.
func KindOf(name string) Kind {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "pdf":
		return KindPDF
	case "doc", "docx":
		return KindDoc
	case "xls", "xlsx":
		return KindSheet
	case "ppt", "pptx":
		return KindSlide
	case "jpg", "jpeg", "png", "gif":
		return KindImage
	default:
		return KindFile
	}
}
