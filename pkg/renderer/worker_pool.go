package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// rowTask is one unit of work: render scanline Y into the shared
// output image. Rows never overlap, so workers write the image buffer
// without synchronization (§5).
type rowTask struct {
	Y int
}

// NewWorkerPool partitions img's rows across runtime.NumCPU() workers
// pulling from a shared channel, the same work-queue shape as the
// teacher's WorkerPool/Worker pair, adapted from per-tile tasks to
// per-row tasks since this renderer has no progressive refinement to
// checkpoint between passes.
type WorkerPool struct {
	renderer *Renderer
	img      *Image
	tasks    chan rowTask
	workers  int
}

// NewWorkerPool builds a pool sized to the host's CPU count.
func NewWorkerPool(r *Renderer, img *Image) *WorkerPool {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		renderer: r,
		img:      img,
		tasks:    make(chan rowTask, img.Height),
		workers:  workers,
	}
}

// Run fills the task queue with every row, starts the workers, and
// blocks until the whole image is rendered.
func (p *WorkerPool) Run() {
	for y := 0; y < p.img.Height; y++ {
		p.tasks <- rowTask{Y: y}
	}
	close(p.tasks)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range p.tasks {
				seed := rand.NewSource(int64(task.Y) + 1)
				p.renderer.renderRow(p.img, task.Y, seed)
			}
		}(w)
	}
	wg.Wait()

	if p.renderer.Logger != nil {
		p.renderer.Logger.Printf("renderer: completed %dx%d image with %d workers", p.img.Width, p.img.Height, p.workers)
	}
}
