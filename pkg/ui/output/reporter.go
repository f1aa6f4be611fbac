package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/hearth/pkg/ui/output/styles"
)

// Announcement formats
const (
	MsgBackedUp       = "Backed up %s to %s"
	MsgCopying        = "Copying %s to %s"
	MsgDeleting       = "Deleting %s"
	MsgCloning        = "Cloning %s into %s"
	MsgKeeping        = "Keeping existing %s"
	MsgCouldNotCopy   = "Could not copy %s: %v"
	MsgCouldNotDelete = "Could not delete %s: %v"
	MsgCouldNotBackup = "Could not back up %s: %v"
	MsgFetchFailed    = "Could not fetch %s: %v"
)

// Reporter writes announcements to w.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w. A nil w discards output.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

func (r *Reporter) line(style, format string, args ...interface{}) {
	fmt.Fprintln(r.w, styles.GetStyle(style).Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) BackedUp(src, dst string) {
	r.line("Muted", MsgBackedUp, src, dst)
}

func (r *Reporter) Copying(src, dst string) {
	r.line("Action", MsgCopying, src, dst)
}

func (r *Reporter) Deleting(path string) {
	r.line("Action", MsgDeleting, path)
}

func (r *Reporter) Cloning(link, dir string) {
	r.line("Action", MsgCloning, link, dir)
}

func (r *Reporter) Keeping(dir string) {
	r.line("Muted", MsgKeeping, dir)
}

func (r *Reporter) CouldNotCopy(src string, err error) {
	r.line("Error", MsgCouldNotCopy, src, err)
}

func (r *Reporter) CouldNotDelete(path string, err error) {
	r.line("Error", MsgCouldNotDelete, path, err)
}

func (r *Reporter) CouldNotBackup(path string, err error) {
	r.line("Warning", MsgCouldNotBackup, path, err)
}

func (r *Reporter) FetchFailed(link string, err error) {
	r.line("Warning", MsgFetchFailed, link, err)
}

// Printf writes a free-form line in the given style.
func (r *Reporter) Printf(style, format string, args ...interface{}) {
	r.line(style, format, args...)
}
