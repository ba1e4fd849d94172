// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tinyserve is the demo development server: it cross-compiles a demo
// package to WebAssembly, serves it with the wasm runtime and a host
// page, and rebuilds automatically when source files change.
//
// Usage:
//
//	tinyserve [flags] [package-dir]
//
// The package directory defaults to the current directory and should
// contain a main package built with the js build tag, such as the
// packages under examples/.
package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Config are the server settings, loadable from a TOML file.
type Config struct {
	// Addr is the address to listen on.
	Addr string `toml:"addr"`

	// Title is the host page title.
	Title string `toml:"title"`
}

// Defaults sets default values for unset fields.
func (cf *Config) Defaults() {
	if cf.Addr == "" {
		cf.Addr = "localhost:8080"
	}
	if cf.Title == "" {
		cf.Title = "tinygraphics demo"
	}
}

// LoadConfig reads the config file if path is non-empty.
func LoadConfig(path string) (*Config, error) {
	cf := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(b, cf); err != nil {
			return nil, fmt.Errorf("tinyserve: parsing %s: %w", path, err)
		}
	}
	cf.Defaults()
	return cf, nil
}

func main() {
	var addr, configPath string

	cmd := &cobra.Command{
		Use:   "tinyserve [package-dir]",
		Short: "serve a tinygraphics demo as WebAssembly, rebuilding on change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cf.Addr = addr
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			srv, err := NewServer(dir, cf)
			if err != nil {
				return err
			}
			defer srv.Close()
			return srv.ListenAndServe()
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default localhost:8080)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
