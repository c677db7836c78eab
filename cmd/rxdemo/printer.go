package main

import (
	"fmt"
	"io"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
)

// newPrinter returns an observer writing one line per event to out,
// prefixed with name when it is not empty.
func newPrinter[E any](out io.Writer, name string) observable.Observer[E] {
	prefix := ""
	if name != "" {
		prefix = name + ": "
	}
	return observable.NewCallbacks(
		func(value E) { fmt.Fprintf(out, "%s%v\n", prefix, value) },
		func(err error) { fmt.Fprintf(out, "%s%s\n", prefix, err.Error()) },
		func() { fmt.Fprintf(out, "%scompleted\n", prefix) },
	)
}
