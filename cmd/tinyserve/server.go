// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Server serves one demo package as WebAssembly, rebuilding the
// binary lazily whenever the sources have changed since the last
// build.
type Server struct {
	dir    string
	config *Config

	watcher *fsnotify.Watcher

	mu    sync.Mutex
	dirty bool
	wasm  string // path of the built binary
}

// NewServer prepares a server for the demo package in dir and starts
// watching its sources for changes.
func NewServer(dir string, cf *Config) (*Server, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(abs); err != nil {
		watcher.Close()
		return nil, err
	}
	srv := &Server{dir: abs, config: cf, watcher: watcher, dirty: true}
	go srv.watch()
	return srv, nil
}

// Close stops the source watcher.
func (srv *Server) Close() error {
	return srv.watcher.Close()
}

// watch invalidates the build cache whenever a Go source file in the
// demo package changes.
func (srv *Server) watch() {
	for {
		select {
		case ev, ok := <-srv.watcher.Events:
			if !ok {
				return
			}
			if strings.HasSuffix(ev.Name, ".go") {
				slog.Info("source changed; scheduling rebuild", "file", ev.Name)
				srv.mu.Lock()
				srv.dirty = true
				srv.mu.Unlock()
			}
		case err, ok := <-srv.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watching sources", "err", err)
		}
	}
}

// build cross-compiles the demo package to wasm if it has changed
// since the last build, returning the binary path.
func (srv *Server) build() (string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if !srv.dirty && srv.wasm != "" {
		return srv.wasm, nil
	}
	out := filepath.Join(os.TempDir(), "tinyserve-app.wasm")
	cmd := exec.Command("go", "build", "-o", out, ".")
	cmd.Dir = srv.dir
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if msg, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tinyserve: building %s: %w\n%s", srv.dir, err, msg)
	}
	srv.dirty = false
	srv.wasm = out
	slog.Info("built", "dir", srv.dir, "out", out)
	return out, nil
}

// wasmExecPath locates the wasm runtime support script shipped with
// the Go toolchain.
func wasmExecPath() (string, error) {
	out, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return "", err
	}
	goroot := strings.TrimSpace(string(out))
	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		p := filepath.Join(goroot, rel)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("tinyserve: wasm_exec.js not found under %s", goroot)
}

var indexPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("app.wasm"), go.importObject)
    .then((result) => go.run(result.instance));
</script>
</head>
<body>
<div id="main-canvas"></div>
<div id="main-controls"></div>
</body>
</html>
`))

// ListenAndServe serves the demo until the process exits.
func (srv *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.FileServer(http.Dir(srv.dir)).ServeHTTP(w, r)
			return
		}
		// a custom index.html in the demo directory wins
		custom := filepath.Join(srv.dir, "index.html")
		if _, err := os.Stat(custom); err == nil {
			http.ServeFile(w, r, custom)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		indexPage.Execute(w, srv.config)
	})
	mux.HandleFunc("/wasm_exec.js", func(w http.ResponseWriter, r *http.Request) {
		p, err := wasmExecPath()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.ServeFile(w, r, p)
	})
	mux.HandleFunc("/app.wasm", func(w http.ResponseWriter, r *http.Request) {
		p, err := srv.build()
		if err != nil {
			slog.Error("build failed", "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeFile(w, r, p)
	})
	slog.Info("serving", "addr", "http://"+srv.config.Addr, "dir", srv.dir)
	return http.ListenAndServe(srv.config.Addr, mux)
}
