//go:build js && wasm

// Package dom implements page.Document over syscall/js.
package dom

import (
	"syscall/js"

	"github.com/mamonis/studio-backend/internal/page"
)

type element struct {
	v js.Value
}

func wrap(v js.Value) page.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return element{v: v}
}

func wrapAll(list js.Value) []page.Element {
	n := list.Length()
	out := make([]page.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, element{v: list.Index(i)})
	}
	return out
}

func (e element) AddClass(name string)      { e.v.Get("classList").Call("add", name) }
func (e element) RemoveClass(name string)   { e.v.Get("classList").Call("remove", name) }
func (e element) HasClass(name string) bool { return e.v.Get("classList").Call("contains", name).Bool() }
func (e element) SetText(text string)       { e.v.Set("textContent", text) }
func (e element) RemoveAttr(name string)    { e.v.Call("removeAttribute", name) }

func (e element) SetAttr(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

// RestartAnimation reads offsetWidth between remove and add; the forced
// reflow is what makes the browser replay the animation.
func (e element) RestartAnimation(class string) {
	classList := e.v.Get("classList")
	classList.Call("remove", class)
	_ = e.v.Get("offsetWidth").Int()
	classList.Call("add", class)
}

func (e element) ScrollIntoView(smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	e.v.Call("scrollIntoView", map[string]interface{}{"behavior": behavior})
}

func (e element) Query(selector string) page.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e element) QueryAll(selector string) []page.Element {
	return wrapAll(e.v.Call("querySelectorAll", selector))
}

type Document struct {
	window js.Value
	doc    js.Value
}

func NewDocument() *Document {
	return &Document{
		window: js.Global(),
		doc:    js.Global().Get("document"),
	}
}

func (d *Document) Body() page.Element { return wrap(d.doc.Get("body")) }

func (d *Document) ByID(id string) page.Element {
	return wrap(d.doc.Call("getElementById", id))
}

func (d *Document) Query(selector string) page.Element {
	return wrap(d.doc.Call("querySelector", selector))
}

func (d *Document) QueryAll(selector string) []page.Element {
	return wrapAll(d.doc.Call("querySelectorAll", selector))
}

func (d *Document) ScrollTo(x, y int) {
	d.window.Call("scrollTo", x, y)
}

func (d *Document) Navigate(url string) {
	d.window.Get("location").Set("href", url)
}

func (d *Document) Alert(message string) {
	d.window.Call("alert", message)
}
