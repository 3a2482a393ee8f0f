//go:build js && wasm

// Command web is the page script, built with GOOS=js GOARCH=wasm and loaded
// through wasm_exec.js.
package main

import (
	"github.com/mamonis/studio-backend/internal/page"
	"github.com/mamonis/studio-backend/internal/page/dom"
	"github.com/mamonis/studio-backend/pkg/patron"
)

func main() {
	doc := dom.NewDocument()
	controller := page.NewController(doc, page.NewTimeScheduler(), patron.NewClient(patron.DefaultEndpoint, nil))

	funcs := dom.Bind(doc, controller)
	defer func() {
		for _, f := range funcs {
			f.Release()
		}
	}()

	controller.Start()
	select {}
}
