package ui

import (
	"time"

	"github.com/hubastard/playground/engine/event"
	"github.com/hubastard/playground/engine/geom"
	"github.com/hubastard/playground/engine/input"
)

// NavList holds focusable items with one selected. Direction keys move the
// selection to the nearest item that way; enter or a click activates.
type NavList struct {
	ctx      *Context
	items    []Focusable
	selected Focusable
	selector *Selector
	onAction func(Focusable)
	enabled  bool
}

// NewNavList builds an empty, disabled list. onAction receives activated items.
func NewNavList(ctx *Context, onAction func(Focusable)) *NavList {
	return &NavList{ctx: ctx, onAction: onAction, selector: NewSelector(ctx)}
}

// Add appends item. The first item added becomes selected.
func (l *NavList) Add(item Focusable) {
	l.items = append(l.items, item)
	if len(l.items) == 1 {
		l.selected = item
		l.selector.Place(item.Bounds())
	}
}

// Remove drops item from the list without destroying it. If it was selected,
// the remaining item nearest to it takes the selection.
func (l *NavList) Remove(item Focusable) bool {
	idx := -1
	for i, it := range l.items {
		if it == item {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)

	if l.selected != item {
		return true
	}
	l.selected = nearest(geom.Center(item.Bounds()), l.items)
	if l.selected != nil {
		l.selector.Animate(l.selected.Bounds())
	}
	return true
}

func (l *NavList) Selected() Focusable { return l.selected }

// Items returns a copy of the items in insertion order.
func (l *NavList) Items() []Focusable {
	return append([]Focusable(nil), l.items...)
}

func (l *NavList) Selector() *Selector { return l.selector }

// Navigate moves the selection towards dir and reports whether it moved.
func (l *NavList) Navigate(dir geom.Direction) bool {
	if l.selected == nil {
		return false
	}
	next := NearestInDirection(l.selected, l.items, dir)
	if next == nil {
		return false
	}
	l.selected = next
	l.selector.Animate(next.Bounds())
	return true
}

// Activate hands the selected item to the action callback.
func (l *NavList) Activate() {
	if l.selected == nil || l.onAction == nil {
		return
	}
	l.onAction(l.selected)
}

// PointerDown activates the first item containing p. The selection is left
// alone.
func (l *NavList) PointerDown(p geom.Point) bool {
	for _, it := range l.items {
		if geom.PointInBounds(p, it.Bounds()) {
			if l.onAction != nil {
				l.onAction(it)
			}
			return true
		}
	}
	return false
}

// Render draws the selector below the items and reports whether it is still
// moving.
func (l *NavList) Render(delta time.Duration) bool {
	more := l.selector.Render(delta)
	for _, it := range l.items {
		it.Render(delta)
	}
	return more
}

// Destroy detaches the list and destroys every item.
func (l *NavList) Destroy() {
	l.Disable()
	for _, it := range l.items {
		it.Destroy()
	}
	l.items = nil
	l.selected = nil
}

// Enable subscribes to key and mouse button changes. Calling it twice is
// harmless.
func (l *NavList) Enable() {
	event.Listen(l.ctx.Input.Bus, input.OnKey, l, l.keyEvent)
	event.Listen(l.ctx.Input.Bus, input.OnMouseButton, l, l.mouseButton)
	l.enabled = true
}

func (l *NavList) Disable() {
	event.Unlisten(l.ctx.Input.Bus, input.OnKey, l)
	event.Unlisten(l.ctx.Input.Bus, input.OnMouseButton, l)
	l.enabled = false
}

func (l *NavList) Enabled() bool { return l.enabled }

func (l *NavList) keyEvent(change input.KeyChange) {
	switch {
	case change[input.KeyUp]:
		l.Navigate(geom.Up)
	case change[input.KeyDown]:
		l.Navigate(geom.Down)
	case change[input.KeyLeft]:
		l.Navigate(geom.Left)
	case change[input.KeyRight]:
		l.Navigate(geom.Right)
	case change[input.KeyEnter]:
		l.Activate()
	}
}

func (l *NavList) mouseButton(change input.ButtonChange) {
	if !change[input.MouseLeft] {
		return
	}
	l.PointerDown(l.ctx.Input.Mouse.Position())
}

// NearestInDirection returns the item closest to from whose centre lies
// within geom.DefaultTolerance of dir, or nil. Ties keep the earlier item.
func NearestInDirection(from Focusable, items []Focusable, dir geom.Direction) Focusable {
	center := geom.Center(from.Bounds())
	var (
		best     Focusable
		bestDist float32
	)
	for _, it := range items {
		if it == from {
			continue
		}
		c := geom.Center(it.Bounds())
		if !geom.IsAngleNear(float32(dir), geom.AngleTo(center, c), geom.DefaultTolerance) {
			continue
		}
		d := geom.Distance(center, c)
		if best == nil || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}

func nearest(p geom.Point, items []Focusable) Focusable {
	var (
		best     Focusable
		bestDist float32
	)
	for _, it := range items {
		d := geom.Distance(p, geom.Center(it.Bounds()))
		if best == nil || d < bestDist {
			best, bestDist = it, d
		}
	}
	return best
}
