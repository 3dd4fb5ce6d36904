// gfxwasm builds and serves gfx programs for the browser.
//
// Usage:
//
//	gfxwasm [-pkg ./samples/fade] [-addr :8080] build|rebuild|serve|run
//
// build writes index.html, wasm_exec.js and main.wasm into the current
// directory, rebuild also overwrites an existing index.html, serve serves
// the current directory and run builds into memory and serves without
// writing anything.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"
)

// canvasID must match window.CanvasID.
const canvasID = "gameCanvas"

type options struct {
	pkg  string
	addr string
}

func main() {
	var opt options
	flag.StringVar(&opt.pkg, "pkg", ".", "Package to compile to main.wasm.")
	flag.StringVar(&opt.addr, "addr", ":8080", "Address serve and run listen on.")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: gfxwasm [flags] build|rebuild|serve|run")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "build", "rebuild":
		err = build(opt, cmd == "rebuild")
	case "serve":
		err = serve(opt.addr, http.FileServer(http.Dir(".")))
	case "run":
		err = run(opt)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "gfxwasm:", err)
		os.Exit(1)
	}
}

// wasmExec returns the wasm_exec.js shipped with the Go installation.
func wasmExec() ([]byte, error) {
	output, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return nil, fmt.Errorf("locating GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(output))
	// Go 1.24 moved the file from misc/wasm to lib/wasm.
	for _, dir := range []string{"lib", "misc"} {
		data, err := os.ReadFile(filepath.Join(goroot, dir, "wasm", "wasm_exec.js"))
		if err == nil {
			return data, nil
		}
	}
	return nil, errors.New("wasm_exec.js not found in " + goroot)
}

func compile(pkg, out string) error {
	cmd := exec.Command("go", "build", "-o", out, pkg)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s", output)
	}
	return nil
}

func build(opt options, overwriteIndex bool) error {
	execJS, err := wasmExec()
	if err != nil {
		return err
	}
	if err := os.WriteFile("wasm_exec.js", execJS, 0666); err != nil {
		return err
	}
	if err := compile(opt.pkg, "main.wasm"); err != nil {
		return err
	}

	existing, err := os.ReadFile("index.html")
	if overwriteIndex || err != nil {
		return os.WriteFile("index.html", indexHTML, 0666)
	}
	if !bytes.Equal(existing, indexHTML) {
		fmt.Println("warning: index.html differs from the template, use gfxwasm rebuild to regenerate it")
	}
	return nil
}

func run(opt options) error {
	execJS, err := wasmExec()
	if err != nil {
		return err
	}
	tempDir, err := os.MkdirTemp("", "gfxwasm_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	out := filepath.Join(tempDir, "main.wasm")
	if err := compile(opt.pkg, out); err != nil {
		return err
	}
	wasm, err := os.ReadFile(out)
	if err != nil {
		return err
	}

	return serve(opt.addr, &handler{
		wasmExec: execJS,
		mainWasm: wasm,
		files:    http.FileServer(http.Dir(".")),
	})
}

// handler serves the page, the runtime and the program from memory and
// everything else, like images, from the working directory.
type handler struct {
	wasmExec []byte
	mainWasm []byte
	files    http.Handler
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "/index.html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	case "/wasm_exec.js":
		w.Header().Set("Content-Type", "text/javascript")
		w.Write(h.wasmExec)
	case "/main.wasm":
		w.Header().Set("Content-Type", "application/wasm")
		w.Write(h.mainWasm)
	default:
		h.files.ServeHTTP(w, r)
	}
}

func serve(addr string, h http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: addr, Handler: h}
	errs := make(chan error, 1)
	go func() { errs <- server.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-time.After(100 * time.Millisecond):
	}

	url := "http://localhost" + addr
	if strings.Contains(addr, ":") && !strings.HasPrefix(addr, ":") {
		url = "http://" + addr
	}
	if err := openURL(url); err != nil {
		fmt.Println(err)
	}

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		fmt.Println("Please navigate to", url)
		return nil
	}
}

var indexHTML = []byte(`<html>
	<head>
		<style>
			body {
				display: flex;
				justify-content: center;
				align-items: center;
				height: 100vh;
				margin: 0;
				background: black;
			}
		</style>
	</head>
	<body>
		<canvas id="` + canvasID + `"></canvas>
		<script src="wasm_exec.js"></script>
		<script>
			const go = new Go();
			WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then((result) => {
				go.run(result.instance);
			});
		</script>
	</body>
</html>
`)
