package render

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"

	"github.com/chmouel/lazyls/internal/models"
)

// iconFileInfo adapts an Entry to os.FileInfo for the devicons lookup,
// which only cares about the name and directory bit.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

func iconForEntry(e models.Entry) string {
	if e.Name == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: e.Name, isDir: e.IsDir})
	return style.Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
