package telekit

import (
	"context"
	"sync"
)

type queuedTask struct {
	ctx context.Context
	fn  func(ctx context.Context)
}

// senderQueue runs tasks one at a time per sender. Different senders run
// concurrently, each on its own goroutine that exits once its queue drains.
type senderQueue struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	pending map[int64][]queuedTask
	closed  bool
	wg      sync.WaitGroup
}

func newSenderQueue() *senderQueue {
	ctx, cancel := context.WithCancel(context.Background())
	return &senderQueue{
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[int64][]queuedTask),
	}
}

// push queues fn behind the sender's earlier tasks. fn gets ctx without its
// cancellation; it is cancelled when the queue closes instead.
func (q *senderQueue) push(ctx context.Context, senderID int64, fn func(ctx context.Context)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	tasks, running := q.pending[senderID]
	q.pending[senderID] = append(tasks, queuedTask{ctx: ctx, fn: fn})
	if running {
		return
	}

	q.wg.Add(1)
	go q.drain(senderID)
}

func (q *senderQueue) drain(senderID int64) {
	defer q.wg.Done()

	for {
		q.mu.Lock()
		tasks := q.pending[senderID]
		if len(tasks) == 0 {
			delete(q.pending, senderID)
			q.mu.Unlock()
			return
		}
		task := tasks[0]
		q.pending[senderID] = tasks[1:]
		q.mu.Unlock()

		q.run(task)
	}
}

func (q *senderQueue) run(task queuedTask) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(task.ctx))
	defer cancel()
	stop := context.AfterFunc(q.ctx, cancel)
	defer stop()

	task.fn(ctx)
}

// wait blocks until every queued task has run.
func (q *senderQueue) wait() {
	q.wg.Wait()
}

// close cancels running tasks, drops new ones and waits for the workers.
func (q *senderQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	q.wg.Wait()
}
