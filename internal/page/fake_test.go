package page

import (
	"sort"
	"strings"
	"sync"
	"time"
)

type fakeElement struct {
	id       string
	classes  map[string]bool
	attrs    map[string]string
	text     string
	children []*fakeElement
	restarts int
	scrolled int
}

func newElement(id string, classes ...string) *fakeElement {
	el := &fakeElement{id: id, classes: map[string]bool{}, attrs: map[string]string{}}
	for _, cl := range classes {
		el.classes[cl] = true
	}
	return el
}

func (e *fakeElement) AddClass(name string)      { e.classes[name] = true }
func (e *fakeElement) RemoveClass(name string)   { delete(e.classes, name) }
func (e *fakeElement) HasClass(name string) bool { return e.classes[name] }
func (e *fakeElement) SetText(text string)       { e.text = text }
func (e *fakeElement) Attr(name string) string   { return e.attrs[name] }
func (e *fakeElement) SetAttr(name, v string)    { e.attrs[name] = v }
func (e *fakeElement) RemoveAttr(name string)    { delete(e.attrs, name) }
func (e *fakeElement) ScrollIntoView(bool)       { e.scrolled++ }

func (e *fakeElement) RestartAnimation(class string) {
	delete(e.classes, class)
	e.classes[class] = true
	e.restarts++
}

func (e *fakeElement) Query(selector string) Element {
	if all := e.QueryAll(selector); len(all) > 0 {
		return all[0]
	}
	return nil
}

// QueryAll understands ".class" and bare tag names stored as the "tag" attr.
func (e *fakeElement) QueryAll(selector string) []Element {
	var out []Element
	var walk func(el *fakeElement)
	walk = func(el *fakeElement) {
		for _, child := range el.children {
			if matches(child, selector) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(e)
	return out
}

func matches(el *fakeElement, selector string) bool {
	if strings.HasPrefix(selector, ".") {
		return el.classes[strings.TrimPrefix(selector, ".")]
	}
	return el.attrs["tag"] == selector
}

func (e *fakeElement) add(children ...*fakeElement) *fakeElement {
	e.children = append(e.children, children...)
	return e
}

type fakeDocument struct {
	body      *fakeElement
	scrollX   int
	scrollY   int
	scrolls   int
	navigated []string
	alerts    []string
	mu        sync.Mutex
}

func newDocument() *fakeDocument {
	return &fakeDocument{body: newElement("body")}
}

func (d *fakeDocument) Body() Element { return d.body }

func (d *fakeDocument) ByID(id string) Element {
	var found *fakeElement
	var walk func(el *fakeElement)
	walk = func(el *fakeElement) {
		for _, child := range el.children {
			if found == nil && child.id == id {
				found = child
			}
			walk(child)
		}
	}
	walk(d.body)
	if found == nil {
		return nil
	}
	return found
}

func (d *fakeDocument) Query(selector string) Element      { return d.body.Query(selector) }
func (d *fakeDocument) QueryAll(selector string) []Element { return d.body.QueryAll(selector) }

func (d *fakeDocument) ScrollTo(x, y int) {
	d.scrollX, d.scrollY = x, y
	d.scrolls++
}

func (d *fakeDocument) Navigate(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.navigated = append(d.navigated, url)
}

func (d *fakeDocument) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, message)
}

// manualScheduler runs callbacks when the test advances its clock.
type manualScheduler struct {
	now   time.Duration
	tasks []*task
}

type task struct {
	at      time.Duration
	every   time.Duration
	f       func()
	stopped bool
}

func (s *manualScheduler) After(d time.Duration, f func()) func() {
	t := &task{at: s.now + d, f: f}
	s.tasks = append(s.tasks, t)
	return func() { t.stopped = true }
}

func (s *manualScheduler) Every(d time.Duration, f func()) func() {
	t := &task{at: s.now + d, every: d, f: f}
	s.tasks = append(s.tasks, t)
	return func() { t.stopped = true }
}

// Advance moves the clock forward by d, running due tasks in time order.
func (s *manualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		var due []*task
		for _, t := range s.tasks {
			if !t.stopped && t.at <= end {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
		t := due[0]
		s.now = t.at
		if t.every > 0 {
			t.at += t.every
		} else {
			t.stopped = true
		}
		t.f()
	}
	s.now = end
}
