// Package display provides the single designated execution context that
// owns all UI-visible state: the surface trial results are rendered to and
// the newest-first report log. Everything that touches either is funneled
// through one goroutine, so neither needs a lock.
package display

// Context is a single-consumer task queue. One goroutine drains it; all
// surface and log mutation happens on that goroutine.
type Context struct {
	tasks chan func()
	done  chan struct{}
}

// NewContext starts the consumer goroutine.
func NewContext() *Context {
	c := &Context{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}

	go c.loop()

	return c
}

func (c *Context) loop() {
	defer close(c.done)

	for fn := range c.tasks {
		fn()
	}
}

// Sync runs fn on the context and blocks until it has finished. Trial
// timing depends on this: the render must complete before the caller's
// clock stops.
func (c *Context) Sync(fn func()) {
	ran := make(chan struct{})

	c.tasks <- func() {
		fn()
		close(ran)
	}

	<-ran
}

// Post runs fn on the context without waiting. Used where only ordering
// relative to other posted work matters, not completion.
func (c *Context) Post(fn func()) {
	c.tasks <- fn
}

// Close drains remaining tasks and stops the consumer. Submitting after
// Close panics; the harness closes only after the matrix is done.
func (c *Context) Close() {
	close(c.tasks)
	<-c.done
}
