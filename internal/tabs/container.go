// Package tabs owns the browser views of one window, tracks which one is
// active and forwards navigation to it. It knows nothing about widgets;
// the window renders tabs by observing the container.
package tabs

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ytget/wayang/internal/engine"
)

var (
	// ErrNoActiveTab is returned by operations that need an active view
	ErrNoActiveTab = errors.New("no active tab")

	// ErrIndexOutOfRange is returned for tab indexes outside [0, Count)
	ErrIndexOutOfRange = errors.New("tab index out of range")
)

// Tab pairs a view with its identity
type Tab struct {
	ID      string
	View    engine.View
	Private bool
}

// Observer is notified synchronously of container changes
type Observer interface {
	TabOpened(index int, tab *Tab)
	TabClosed(index int, tab *Tab)
	TabMoved(from, to int)
	ActiveChanged(index int, tab *Tab)
}

// Container is an ordered set of tabs with one active tab. It is not safe
// for concurrent use; callers stay on the UI thread.
type Container struct {
	factory   engine.Factory
	tabs      []*Tab
	active    int
	observers []Observer
}

// NewContainer creates an empty container that builds views with factory
func NewContainer(factory engine.Factory) *Container {
	return &Container{factory: factory, active: -1}
}

// AddObserver registers an observer
func (c *Container) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// OpenTab creates a view for mode, appends it as the active tab and
// navigates it to url. Observers see the tab before navigation starts so
// they can attach a listener first.
func (c *Container) OpenTab(url string, mode engine.Mode) *Tab {
	tab := &Tab{
		ID:      uuid.NewString(),
		View:    c.factory(mode),
		Private: mode.Private,
	}

	c.tabs = append(c.tabs, tab)
	index := len(c.tabs) - 1
	c.active = index

	for _, o := range c.observers {
		o.TabOpened(index, tab)
	}
	for _, o := range c.observers {
		o.ActiveChanged(index, tab)
	}

	tab.View.Navigate(url)
	return tab
}

// CloseTab removes the tab at index and closes its view. The last
// remaining tab is never closed; an invalid index is ignored. Reports
// whether a tab was removed.
func (c *Container) CloseTab(index int) bool {
	if index < 0 || index >= len(c.tabs) || len(c.tabs) <= 1 {
		return false
	}

	tab := c.tabs[index]
	c.tabs = append(c.tabs[:index], c.tabs[index+1:]...)

	activeChanged := false
	switch {
	case index < c.active:
		c.active--
	case index == c.active:
		if c.active >= len(c.tabs) {
			c.active = len(c.tabs) - 1
		}
		activeChanged = true
	}

	tab.View.Close()

	for _, o := range c.observers {
		o.TabClosed(index, tab)
	}
	if activeChanged {
		c.notifyActive()
	}
	return true
}

// Select makes the tab at index active
func (c *Container) Select(index int) error {
	if index < 0 || index >= len(c.tabs) {
		return ErrIndexOutOfRange
	}
	if index == c.active {
		return nil
	}
	c.active = index
	c.notifyActive()
	return nil
}

// Move reorders a tab. The active tab stays the same view.
func (c *Container) Move(from, to int) error {
	if from < 0 || from >= len(c.tabs) || to < 0 || to >= len(c.tabs) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	activeTab := c.activeTab()
	tab := c.tabs[from]
	c.tabs = append(c.tabs[:from], c.tabs[from+1:]...)
	c.tabs = append(c.tabs[:to], append([]*Tab{tab}, c.tabs[to:]...)...)
	c.active = c.Index(activeTab)

	for _, o := range c.observers {
		o.TabMoved(from, to)
	}
	return nil
}

// Active returns the active tab index, -1 when empty
func (c *Container) Active() int {
	return c.active
}

// ActiveTab returns the active tab
func (c *Container) ActiveTab() (*Tab, error) {
	tab := c.activeTab()
	if tab == nil {
		return nil, ErrNoActiveTab
	}
	return tab, nil
}

// ActiveView returns the active tab's view
func (c *Container) ActiveView() (engine.View, error) {
	tab := c.activeTab()
	if tab == nil {
		return nil, ErrNoActiveTab
	}
	return tab.View, nil
}

// Count returns the number of tabs
func (c *Container) Count() int {
	return len(c.tabs)
}

// Tabs returns the tabs in display order
func (c *Container) Tabs() []*Tab {
	out := make([]*Tab, len(c.tabs))
	copy(out, c.tabs)
	return out
}

// Tab returns the tab at index
func (c *Container) Tab(index int) (*Tab, error) {
	if index < 0 || index >= len(c.tabs) {
		return nil, ErrIndexOutOfRange
	}
	return c.tabs[index], nil
}

// Index returns the position of tab, or -1
func (c *Container) Index(tab *Tab) int {
	for i, t := range c.tabs {
		if t == tab {
			return i
		}
	}
	return -1
}

// IndexOfView returns the position of the tab holding v, or -1
func (c *Container) IndexOfView(v engine.View) int {
	for i, t := range c.tabs {
		if t.View == v {
			return i
		}
	}
	return -1
}

// IsActiveView reports whether v belongs to the active tab
func (c *Container) IsActiveView(v engine.View) bool {
	tab := c.activeTab()
	return tab != nil && tab.View == v
}

// Navigate loads url in the active view
func (c *Container) Navigate(url string) error {
	return c.withActive(func(v engine.View) { v.Navigate(url) })
}

// Back goes back in the active view
func (c *Container) Back() error {
	return c.withActive(engine.View.Back)
}

// Forward goes forward in the active view
func (c *Container) Forward() error {
	return c.withActive(engine.View.Forward)
}

// Reload reloads the active view
func (c *Container) Reload() error {
	return c.withActive(engine.View.Reload)
}

// CloseAll closes every view. Used on window shutdown.
func (c *Container) CloseAll() {
	for _, t := range c.tabs {
		t.View.Close()
	}
}

func (c *Container) withActive(fn func(engine.View)) error {
	v, err := c.ActiveView()
	if err != nil {
		return err
	}
	fn(v)
	return nil
}

func (c *Container) activeTab() *Tab {
	if c.active < 0 || c.active >= len(c.tabs) {
		return nil
	}
	return c.tabs[c.active]
}

func (c *Container) notifyActive() {
	tab := c.activeTab()
	for _, o := range c.observers {
		o.ActiveChanged(c.active, tab)
	}
}
