package surface

import "sync"

// Pool is a thread-safe pool for reusing surface buffers.
//
// Pool groups buffers by byte length, so surfaces of the same size and
// bytes-per-pixel share a bucket. Surfaces created WithPool return their
// buffer here on Release and take from it before allocating.
//
// A nil *Pool is valid and never retains anything.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPool creates a pool that retains at most maxPerBucket buffers of each
// length. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of length n, reused if possible.
func (p *Pool) Get(n int) []byte {
	if p == nil || n == 0 {
		return make([]byte, n)
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns buf to the pool. The buffer is cleared before it is stored.
// If the bucket is full, the buffer is left to the garbage collector.
func (p *Pool) Put(buf []byte) {
	if p == nil || len(buf) == 0 {
		return
	}

	clear(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(buf)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[len(buf)] = append(bucket, buf)
}

// Len returns the number of buffers currently retained.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

var defaultPool = NewPool(8)

// DefaultPool returns a process-wide pool for callers that opt in with
// WithPool(DefaultPool()). Surfaces never use it implicitly.
func DefaultPool() *Pool {
	return defaultPool
}
