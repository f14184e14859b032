package console

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type Progress struct {
	bar     *progressbar.ProgressBar
	current string
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Iniciando..."),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowBytes(false),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

// Update advances the spinner. The description is only redrawn when the status changes.
func (p *Progress) Update(status string) {
	if status != p.current {
		p.current = status
		p.bar.Describe(fmt.Sprintf("[cyan]%s[reset]", status))
	}
	_ = p.bar.Add(1)
}

// Status returns the description currently shown, empty after Clear.
func (p *Progress) Status() string {
	return p.current
}

func (p *Progress) Clear() {
	p.current = ""
	_ = p.bar.Clear()
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
