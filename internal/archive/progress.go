package archive

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressWriter tracks bytes written and updates an mpb.Bar.
type ProgressWriter struct {
	w   io.Writer
	bar *mpb.Bar
}

func NewProgressWriter(w io.Writer, bar *mpb.Bar) *ProgressWriter {
	return &ProgressWriter{w: w, bar: bar}
}

func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	if n > 0 {
		pw.bar.IncrBy(n)
	}
	return n, err
}

// ProgressReader tracks bytes read and updates an mpb.Bar.
type ProgressReader struct {
	r   io.Reader
	bar *mpb.Bar
}

func NewProgressReader(r io.Reader, bar *mpb.Bar) *ProgressReader {
	return &ProgressReader{r: r, bar: bar}
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.bar.IncrBy(n)
	}
	return n, err
}

// ByteCounter counts bytes without a UI bar, used for manifest size tracking.
type ByteCounter struct {
	Count int64
}

func (bc *ByteCounter) Write(p []byte) (int, error) {
	n := len(p)
	bc.Count += int64(n)
	return n, nil
}

func NewProgressContainer() *mpb.Progress {
	return mpb.New(mpb.WithWidth(64))
}

// mpbProgress pairs a container with the single bar a job uses.
type mpbProgress struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func newJobProgress(name string) *mpbProgress {
	p := NewProgressContainer()
	return &mpbProgress{
		container: p,
		bar:       AddArchiveBar(p, name),
	}
}

func (p *mpbProgress) finish(total int64) {
	p.bar.SetTotal(total, true)
	p.container.Wait()
}

func (p *mpbProgress) finishIndeterminate() {
	p.bar.SetTotal(p.bar.Current(), true)
	p.container.Wait()
}

// AddArchiveBar adds an indeterminate byte-counter bar for one job.
func AddArchiveBar(p *mpb.Progress, name string) *mpb.Bar {
	if p == nil {
		return nil
	}
	return p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1}),
			decor.CountersKibiByte("% .2f / % .2f"),
		),
		mpb.AppendDecorators(
			decor.Name(" processed"),
			decor.OnComplete(decor.Name(" [DONE]"), " [FINISH]"),
		),
	)
}
