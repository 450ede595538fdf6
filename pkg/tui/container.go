// ABOUTME: Container stacks child Components vertically, e.g. window chrome over its body
// ABOUTME: Thread-safe via RWMutex for concurrent render vs mutation

package tui

import "sync"

// Container holds an ordered list of child components rendered top to bottom.
type Container struct {
	mu       sync.RWMutex
	children []Component
}

// NewContainer creates a container holding children in order.
func NewContainer(children ...Component) *Container {
	return &Container{children: children}
}

// Add appends a component to the container.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	c.children = append(c.children, comp)
	c.mu.Unlock()
}

// Len returns the number of children.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.children)
}

// Render renders all children sequentially into the buffer.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		if child != nil {
			child.Render(out, width)
		}
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		if child != nil {
			child.Invalidate()
		}
	}
}
