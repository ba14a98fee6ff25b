package gateway

import "sync"

// pendingRequest is a queued caller awaiting a refreshed token: a resolution
// callback paired with a rejection callback. Pending requests are settled in
// strict FIFO enqueue order once the in-flight refresh settles.
type pendingRequest struct {
	resolve func(token string)
	reject  func(err error)
}

// refreshCoordinator owns the refresh-in-progress flag and the pending
// request queue. Both are guarded by one mutex so that "is a refresh in
// progress?" and "mark a refresh as in progress" execute as a single
// uninterrupted unit — the invariant that keeps concurrent outbound refresh
// operations at most one.
type refreshCoordinator struct {
	mu       sync.Mutex
	inFlight bool
	pending  []pendingRequest
}

// begin either makes the caller the refresh leader (returns true, flag now
// set) or, when a refresh is already in flight, enqueues the callbacks and
// returns false. Exactly one of the two happens per call.
func (c *refreshCoordinator) begin(resolve func(token string), reject func(err error)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		c.pending = append(c.pending, pendingRequest{resolve: resolve, reject: reject})
		return false
	}
	c.inFlight = true
	return true
}

// settle clears the in-progress flag and delivers the outcome to every
// pending request in enqueue order. A non-nil err rejects all of them with
// the same error; otherwise each is resolved with the token. Callbacks run
// outside the lock so they may re-enter the coordinator.
func (c *refreshCoordinator) settle(token string, err error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.inFlight = false
	c.mu.Unlock()

	for _, p := range pending {
		if err != nil {
			p.reject(err)
		} else {
			p.resolve(token)
		}
	}
}

// refreshing reports whether a refresh is currently in flight.
func (c *refreshCoordinator) refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}
