package main

import (
	"io"

	"github.com/npillmayer/adsl/inspect"
)

var renderers = map[string]func(tree inspect.Layered, w io.Writer) error{
	"console": func(tree inspect.Layered, w io.Writer) error {
		return inspect.NewConsole(nil).Print(tree, w, nil)
	},
	"dot":  inspect.ToDot,
	"html": inspect.ToHTML,
	"yaml": inspect.ToYAML,
}
