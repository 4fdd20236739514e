package mxcli

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"oss.mustex.org/mustex/lib/xmain"
)

type watchJob struct {
	inputPath  string
	outputPath string
	preamble   bool
	scale      float64
}

// watch regenerates the output whenever the input file changes. A failed
// compile logs the error and leaves the previous output untouched; the next
// successful compile overwrites it.
//
// Editors rarely write a file in one event. Saves show up as bursts of
// write/chmod/rename events, so changes are batched behind a short timer and
// the watch is re-added by path: editors that rename-over the file (vim,
// most atomic-save setups) replace the inode the watcher was following.
func watch(ctx context.Context, ms *xmain.State, job watchJob) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// watch the directory, not the file: rename-over saves drop a file-level
	// watch silently
	err = fw.Add(filepath.Dir(job.inputPath))
	if err != nil {
		return err
	}

	compile := func() {
		err := generate(ctx, ms, "", job.inputPath, job.outputPath, job.preamble, job.scale)
		if err != nil {
			ms.Log.Error.Printf("failed to regenerate %s: %v", job.outputPath, err)
		}
	}
	compile()
	ms.Log.Info.Printf("watching %s for changes...", job.inputPath)

	eatBurstTimer := time.NewTimer(0)
	if !eatBurstTimer.Stop() {
		<-eatBurstTimer.C
	}
	pending := false

	absInput, err := filepath.Abs(job.inputPath)
	if err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			evPath, err := filepath.Abs(ev.Name)
			if err != nil || evPath != absInput {
				continue
			}
			pending = true
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			if pending {
				pending = false
				ms.Log.Info.Printf("detected change in %s: recompiling...", job.inputPath)
				compile()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
