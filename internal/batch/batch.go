// Package batch renders many heatmaps concurrently. Every job owns its own
// config and seed, so workers share nothing but the job and result channels.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"thermal-heatmap/internal/render"
	"thermal-heatmap/pkg/thermal"
)

// Job is one heatmap to synthesize.
type Job struct {
	Name    string
	Sources int
	Edges   int
	Config  thermal.Config
}

// Result is the outcome of a Job.
type Result struct {
	Job     Job
	Heatmap *thermal.Heatmap
	Err     error
	Elapsed time.Duration
}

// Plan expands a request into count jobs. A seeded config yields
// consecutive seeds starting at its seed; an unseeded one leaves every job
// to draw its own.
func Plan(name string, sources, edges int, cfg thermal.Config, count int) []Job {
	if count < 1 {
		count = 1
	}
	jobs := make([]Job, count)
	for i := range jobs {
		c := cfg
		if cfg.Seeded {
			c = cfg.WithSeed(cfg.Seed + int64(i))
		}
		jobs[i] = Job{Name: name, Sources: sources, Edges: edges, Config: c}
	}
	return jobs
}

// Run synthesizes jobs on workers goroutines and calls collect for every
// result in completion order. collect runs on the calling goroutine.
func Run(jobs []Job, workers int, collect func(Result)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	work := make(chan Job)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range work {
				start := time.Now()
				hm, err := thermal.Generate(job.Sources, job.Edges, job.Config)
				results <- Result{Job: job, Heatmap: hm, Err: err, Elapsed: time.Since(start)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, job := range jobs {
			work <- job
		}
		close(work)
	}()

	for res := range results {
		collect(res)
	}
}

// Output writes results as PNG files.
type Output struct {
	Dir      string
	Colormap *render.Colormap
	Scale    int
	Smooth   bool
}

// Path returns the file a result is written to.
func (o Output) Path(res Result) string {
	return filepath.Join(o.Dir, fmt.Sprintf("%s-%d.png", res.Job.Name, res.Heatmap.Seed()))
}

// Write renders res and stores it under Dir, returning the file path.
func (o Output) Write(res Result) (string, error) {
	if res.Err != nil {
		return "", res.Err
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	img := render.Upscale(render.Image(res.Heatmap.Grid(), o.Colormap), o.Scale, o.Smooth)
	path := o.Path(res)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
