//go:build js && wasm

package gfx

import (
	"bytes"
	"fmt"
	"io"
	"syscall/js"
)

// OpenFile is used to read image and font files. In the browser it fetches
// path relative to the page URL; replace it to read from an embedded file
// system instead.
//
// It blocks until the response arrives, so it must not be called from a
// JavaScript callback.
var OpenFile = func(path string) (io.ReadCloser, error) {
	data, err := fetch(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func fetch(path string) ([]byte, error) {
	resp, err := await(js.Global().Call("fetch", path))
	if err != nil {
		return nil, err
	}
	if !resp.Get("ok").Bool() {
		return nil, fmt.Errorf("fetching %q: %s", path, resp.Get("statusText").String())
	}
	buf, err := await(resp.Call("arrayBuffer"))
	if err != nil {
		return nil, err
	}
	array := js.Global().Get("Uint8Array").New(buf)
	data := make([]byte, array.Get("length").Int())
	js.CopyBytesToGo(data, array)
	return data, nil
}

// await blocks the calling goroutine until promise settles.
func await(promise js.Value) (js.Value, error) {
	done := make(chan struct{})
	var result js.Value
	var err error
	onResolve := js.FuncOf(func(this js.Value, args []js.Value) any {
		result = args[0]
		close(done)
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(this js.Value, args []js.Value) any {
		err = js.Error{Value: args[0]}
		close(done)
		return nil
	})
	defer onReject.Release()
	promise.Call("then", onResolve, onReject)
	<-done
	return result, err
}
