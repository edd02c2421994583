package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/mattjamieson/tinyhttp"
)

type config struct {
	Addr    string `env:"ADDR" envDefault:":8080"`
	FileDir string `env:"FILE_DIR" envDefault:"./public"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	s := tinyhttp.NewServer(cfg.Addr)

	s.Get("/", func(p *tinyhttp.Params) *tinyhttp.Response {
		return tinyhttp.HTML("<h1>tinyhttp</h1><p>Try /hello/world</p>")
	})
	s.Get("/hello/{name}", func(p *tinyhttp.Params) *tinyhttp.Response {
		return tinyhttp.Text("Hello, " + p.Get("name").String() + "!")
	})
	s.Get("/add/{a}/{b}", func(p *tinyhttp.Params) *tinyhttp.Response {
		a, err := p.Get("a").Int()
		if err != nil {
			return tinyhttp.NotFound()
		}
		b, err := p.Get("b").Int()
		if err != nil {
			return tinyhttp.NotFound()
		}
		return tinyhttp.Text(strconv.Itoa(a + b))
	})
	s.Get("/files/{name}", func(p *tinyhttp.Params) *tinyhttp.Response {
		return tinyhttp.ServeFile(cfg.FileDir, p.Get("name").String())
	})
	s.Get("/docs", func(p *tinyhttp.Params) *tinyhttp.Response {
		return tinyhttp.Redirect("/")
	})

	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
