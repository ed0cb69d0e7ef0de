package solver

import "sync"

// TaskPool is a fixed-size worker pool dispatching data-parallel jobs
// over disjoint index ranges. Rather than overload a single condition
// variable for both "work available" and "all complete", this
// implementation uses a sync.Cond purely to wake idle workers and a
// sync.WaitGroup as the completion latch for Dispatch — a cleaner
// separation of the two signals.
type TaskPool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stop    bool
	workers int

	wg       sync.WaitGroup
	workerWG sync.WaitGroup
}

// NewTaskPool spawns workers goroutines, each looping: dequeue-blocking
// a task, run it, mark it done on the dispatch WaitGroup.
func NewTaskPool(workers int) *TaskPool {
	if workers < 1 {
		workers = 1
	}
	p := &TaskPool{workers: workers}
	p.cond = sync.NewCond(&p.mu)

	p.workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		go p.loop()
	}
	return p
}

// Workers returns the number of worker goroutines in the pool.
func (p *TaskPool) Workers() int {
	return p.workers
}

func (p *TaskPool) loop() {
	defer p.workerWG.Done()
	for {
		task, ok := p.dequeue()
		if !ok {
			return
		}
		task()
		p.wg.Done()
	}
}

// dequeue blocks until the queue is non-empty or the pool is stopping.
// Returns ok=false once stopped with no more work queued.
func (p *TaskPool) dequeue() (func(), bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 && !p.stop {
		p.cond.Wait()
	}
	if len(p.queue) == 0 && p.stop {
		return nil, false
	}

	task := p.queue[0]
	p.queue = p.queue[1:]
	return task, true
}

// enqueue pushes one unit of work and wakes a single idle worker. The
// caller must have already added 1 to the dispatch WaitGroup.
func (p *TaskPool) enqueue(task func()) {
	p.mu.Lock()
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Dispatch splits [0, n) into Workers() equal batches of floor(n/workers)
// indices, enqueues one task per batch, runs the remainder
// floor(n/workers)*workers..n on the calling goroutine, then blocks
// until every batch has completed.
func (p *TaskPool) Dispatch(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batch := n / p.workers
	if batch == 0 {
		fn(0, n)
		return
	}

	dispatched := batch * p.workers
	p.wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		start := w * batch
		end := start + batch
		p.enqueue(func() { fn(start, end) })
	}

	if dispatched < n {
		fn(dispatched, n)
	}

	p.wg.Wait()
}

// Stop signals every worker to exit once its current and queued tasks
// drain, wakes them all, and joins them. Any task already dequeued runs
// to completion before its worker exits.
func (p *TaskPool) Stop() {
	p.mu.Lock()
	p.stop = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.workerWG.Wait()
}
