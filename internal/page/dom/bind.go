//go:build js && wasm

package dom

import (
	"context"
	"strings"
	"syscall/js"

	"github.com/mamonis/studio-backend/internal/page"
	"github.com/mamonis/studio-backend/pkg/patron"
)

// Bind exposes the controller to the page's inline handlers
// (onclick="showPage('works')") and wires the document-level listeners.
// The returned funcs must stay alive for the page's lifetime.
func Bind(d *Document, c *page.Controller) []js.Func {
	var funcs []js.Func
	global := func(name string, fn func(args []js.Value)) {
		f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			fn(args)
			return nil
		})
		funcs = append(funcs, f)
		d.window.Set(name, f)
	}

	global("toggleTheme", func([]js.Value) { c.ToggleTheme() })
	global("showPage", func(args []js.Value) {
		c.ShowPage(stringArg(args, 0), stringArg(args, 1))
	})
	global("openLightbox", func(args []js.Value) {
		index := 0
		if len(args) > 1 && args[1].Type() == js.TypeNumber {
			index = args[1].Int()
		}
		c.OpenLightbox(stringArg(args, 0), index)
	})
	global("closeLightbox", func([]js.Value) { c.CloseLightbox() })
	global("prevLightbox", func([]js.Value) { c.PrevLightbox() })
	global("nextLightbox", func([]js.Value) { c.NextLightbox() })
	global("selectPatronType", func(args []js.Value) {
		c.SelectPatronType(patron.Type(stringArg(args, 0)))
	})
	global("handlePatronSubmit", func([]js.Value) {
		amount := ""
		if input := d.doc.Call("getElementById", "patron-amount"); !input.IsNull() {
			amount = input.Get("value").String()
		}
		// The fetch behind SubmitPatron must not block the event loop.
		go c.SubmitPatron(context.Background(), amount)
	})

	keydown := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		c.HandleKey(args[0].Get("key").String())
		return nil
	})
	funcs = append(funcs, keydown)
	d.doc.Call("addEventListener", "keydown", keydown)

	funcs = append(funcs, observeReveals(d, c)...)
	funcs = append(funcs, bindAnchors(d, c)...)

	return funcs
}

func observeReveals(d *Document, c *page.Controller) []js.Func {
	callback := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		entries := args[0]
		batch := make([]page.Intersection, 0, entries.Length())
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			batch = append(batch, page.Intersection{
				Target:       element{v: entry.Get("target")},
				Intersecting: entry.Get("isIntersecting").Bool(),
			})
		}
		c.Reveal(batch)
		return nil
	})

	observer := d.window.Get("IntersectionObserver").New(callback, map[string]interface{}{
		"threshold": page.RevealThreshold,
	})
	for _, target := range c.RevealTargets() {
		observer.Call("observe", target.(element).v)
	}
	return []js.Func{callback}
}

func bindAnchors(d *Document, c *page.Controller) []js.Func {
	click := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		args[0].Call("preventDefault")
		c.HandleAnchorClick(this.Call("getAttribute", "href").String())
		return nil
	})

	anchors := d.doc.Call("querySelectorAll", `a[href^="#"]`)
	for i := 0; i < anchors.Length(); i++ {
		anchors.Index(i).Call("addEventListener", "click", click)
	}
	return []js.Func{click}
}

func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return strings.TrimSpace(args[i].String())
}
