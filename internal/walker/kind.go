package walker

import (
	"path/filepath"
	"strings"
)

// Kind is the broad category of a published site file.
type Kind string

const (
	KindImage  Kind = "image"
	KindData   Kind = "data"
	KindStyle  Kind = "style"
	KindScript Kind = "script"
	KindFont   Kind = "font"
	KindOther  Kind = "other"
)

var extensionToKind = map[string]Kind{
	".png":   KindImage,
	".jpg":   KindImage,
	".jpeg":  KindImage,
	".gif":   KindImage,
	".webp":  KindImage,
	".avif":  KindImage,
	".svg":   KindImage,
	".ico":   KindImage,
	".json":  KindData,
	".css":   KindStyle,
	".js":    KindScript,
	".mjs":   KindScript,
	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,
}

// DetectKind classifies a file by its extension.
func DetectKind(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if k, ok := extensionToKind[ext]; ok {
		return k
	}
	return KindOther
}
