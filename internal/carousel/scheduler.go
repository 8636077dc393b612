package carousel

// FrameScheduler coalesces work onto the next frame. At most one callback is
// pending; scheduling again replaces a callback that has not run yet.
//
// It is not safe for concurrent use; callers drive it from the UI loop.
type FrameScheduler struct {
	pending func()
	runs    int
}

// Schedule replaces any pending callback with fn.
func (fs *FrameScheduler) Schedule(fn func()) {
	fs.pending = fn
}

// RunFrame runs the pending callback, if any. Returns whether one ran.
func (fs *FrameScheduler) RunFrame() bool {
	fn := fs.pending
	if fn == nil {
		return false
	}
	fs.pending = nil
	fs.runs++
	fn()
	return true
}

// Cancel drops the pending callback without running it.
func (fs *FrameScheduler) Cancel() {
	fs.pending = nil
}

// IsPending returns whether a callback is waiting for the next frame.
func (fs *FrameScheduler) IsPending() bool {
	return fs.pending != nil
}

// Runs returns how many callbacks have executed.
func (fs *FrameScheduler) Runs() int {
	return fs.runs
}
