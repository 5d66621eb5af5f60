package fileio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
	"golang.org/x/exp/slices"

	"github.com/leocov-dev/everup/core"
)

// DefaultConcurrency bounds simultaneous downloads unless overridden.
const DefaultConcurrency = 4

// DownloadResult is the terminal state of one update task. Exactly one
// result is delivered per task; Err is nil only for a committed download.
type DownloadResult struct {
	Task core.UpdateTask
	// Path is the committed archive location, empty on failure.
	Path string
	// Fingerprint is the computed digest of the downloaded bytes, set
	// whenever the body was fully read (even when verification failed).
	Fingerprint string
	Err         error
}

// DownloadSession downloads, verifies and commits a batch of update tasks
// concurrently. Tasks are isolated: a failure (or panic) in one never
// cancels or corrupts the others, and the superseded archive of a task is
// only deleted after its replacement passed checksum verification.
type DownloadSession struct {
	modsDir     string
	tasks       []core.UpdateTask
	concurrency int
	progressOut io.Writer
}

type SessionOption func(*DownloadSession)

// WithConcurrency caps the number of simultaneous downloads. Zero removes
// the bound entirely.
func WithConcurrency(n int) SessionOption {
	return func(s *DownloadSession) {
		s.concurrency = n
	}
}

// WithProgressOutput redirects progress bar rendering, e.g. to io.Discard
// when the session runs non-interactively.
func WithProgressOutput(w io.Writer) SessionOption {
	return func(s *DownloadSession) {
		s.progressOut = w
	}
}

func NewDownloadSession(modsDir string, tasks []core.UpdateTask, opts ...SessionOption) *DownloadSession {
	session := &DownloadSession{
		modsDir:     modsDir,
		tasks:       tasks,
		concurrency: DefaultConcurrency,
		progressOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// Start launches all downloads and returns the channel their results are
// delivered on. The channel closes once every task reached a terminal
// state; results arrive in completion order, not task order.
func (s *DownloadSession) Start() <-chan DownloadResult {
	results := make(chan DownloadResult, len(s.tasks))

	progress := mpb.New(mpb.WithOutput(s.progressOut))

	var sem chan struct{}
	if s.concurrency > 0 {
		sem = make(chan struct{}, s.concurrency)
	}

	var wg sync.WaitGroup
	for _, task := range s.tasks {
		wg.Add(1)
		go func(task core.UpdateTask) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			results <- s.run(task, progress)
		}(task)
	}

	go func() {
		wg.Wait()
		progress.Wait()
		close(results)
	}()

	return results
}

func (s *DownloadSession) run(task core.UpdateTask, progress *mpb.Progress) (res DownloadResult) {
	res = DownloadResult{Task: task}
	defer func() {
		if r := recover(); r != nil {
			res = DownloadResult{
				Task: task,
				Err:  fmt.Errorf("download of %s panicked: %v", task.ModName, r),
			}
		}
	}()

	resp, err := core.GetWithUA(task.DownloadURL, "application/octet-stream")
	if err != nil {
		res.Err = fmt.Errorf("downloading %s: %w", task.ModName, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		res.Err = fmt.Errorf("downloading %s: unexpected response status: %v", task.ModName, resp.Status)
		return
	}

	dest := filepath.Join(s.modsDir, DestinationFileName(resp))

	// Never stream over an archive that must survive a rollback; stage the
	// payload next to it and rename at commit.
	writePath := dest
	if dest == task.PathToSupersede {
		writePath = dest + ".part"
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(task.ModName+" ", decor.WCSyncSpaceR),
			decor.CountersKibiByte("% .1f / % .1f"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	hasher, err := core.GetHashImpl(core.FingerprintFormat)
	if err != nil {
		bar.Abort(true)
		res.Err = err
		return
	}

	f, err := CreateFile(writePath)
	if err != nil {
		bar.Abort(true)
		res.Err = fmt.Errorf("downloading %s: %w", task.ModName, err)
		return
	}

	body := bar.ProxyReader(resp.Body)
	written, err := io.Copy(f, io.TeeReader(body, hasher))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		bar.Abort(true)
		_ = os.Remove(writePath)
		res.Err = fmt.Errorf("downloading %s: %w", task.ModName, err)
		return
	}
	// Content-Length is advisory; force bar completion from actual bytes.
	bar.SetTotal(written, true)

	res.Fingerprint = hasher.String()
	if !slices.Contains(task.ExpectedFingerprints, res.Fingerprint) {
		_ = os.Remove(writePath)
		res.Err = &core.IntegrityError{
			File:     dest,
			Computed: res.Fingerprint,
			Expected: task.ExpectedFingerprints,
		}
		return
	}

	if task.PathToSupersede != "" && task.PathToSupersede != dest {
		if _, statErr := os.Stat(task.PathToSupersede); statErr == nil {
			if err := os.Remove(task.PathToSupersede); err != nil {
				// Two verified copies must not coexist; keep the old one.
				_ = os.Remove(writePath)
				res.Err = fmt.Errorf("replacing %s: %w", task.PathToSupersede, err)
				return
			}
		}
	}

	if writePath != dest {
		if err := os.Rename(writePath, dest); err != nil {
			_ = os.Remove(writePath)
			res.Err = fmt.Errorf("committing %s: %w", dest, err)
			return
		}
	}

	res.Path = dest
	return
}
