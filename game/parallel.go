package game

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/sunset/systems"
)

// parallelThreshold is the minimum row count to split across workers.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 16

// workChunk represents a range of grid rows for a worker to process.
type workChunk struct {
	from, to int
	t        float64
}

// rowPool runs a RowKernel across persistent worker goroutines.
// Every worker owns a disjoint row range per dispatch, so kernels need no locking.
type rowPool struct {
	kernel     systems.RowKernel
	numWorkers int

	// Worker pool channels
	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

// newRowPool creates a pool for kernel. workers <= 0 disables the pool;
// workers above GOMAXPROCS are capped.
func newRowPool(kernel systems.RowKernel, workers int) *rowPool {
	if max := runtime.GOMAXPROCS(0); workers > max {
		workers = max
	}
	if workers < 0 {
		workers = 0
	}
	return &rowPool{kernel: kernel, numWorkers: workers}
}

// startWorkers launches persistent worker goroutines.
func (p *rowPool) startWorkers() {
	if p.running || p.numWorkers < 2 {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *rowPool) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *rowPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.kernel.UpdateRows(chunk.from, chunk.to, chunk.t)
			p.doneChan <- struct{}{}
		}
	}
}

// update runs the kernel over all rows for time t and returns when every
// row is written. Small grids and stopped pools run on the caller.
func (p *rowPool) update(t float64) {
	rows := p.kernel.Rows()
	if !p.running || rows < parallelThreshold {
		p.kernel.UpdateRows(0, rows, t)
		return
	}

	chunkSize := (rows + p.numWorkers - 1) / p.numWorkers
	sent := 0
	for from := 0; from < rows; from += chunkSize {
		to := from + chunkSize
		if to > rows {
			to = rows
		}
		p.workChan <- workChunk{from: from, to: to, t: t}
		sent++
	}

	for i := 0; i < sent; i++ {
		<-p.doneChan
	}
}
