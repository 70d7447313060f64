// Package greeting provides the hello world helper functions exposed by orbin.
package greeting

import (
	"fmt"
	"io"
	"os"
)

// output overrides where the printing helpers write. Tests swap it to
// capture output; when nil the helpers write to the current os.Stdout.
var output io.Writer

func writer() io.Writer {
	if output != nil {
		return output
	}
	return os.Stdout
}

// HelloWorld prints "hello world" followed by a newline to standard output.
func HelloWorld() {
	fmt.Fprintln(writer(), "hello world")
}

// HelloWorldWithName prints "hello <name>" followed by a newline to standard
// output. The name is printed verbatim. When no name is given it defaults to
// "World". Note the capitalized default, distinct from HelloWorld's all
// lowercase message; both literals are part of the documented behavior.
func HelloWorldWithName(name ...string) {
	subject := "World"
	if len(name) > 0 {
		subject = name[0]
	}
	fmt.Fprintf(writer(), "hello %s\n", subject)
}

// GetHelloWorldMessage returns "hello world" without printing anything.
func GetHelloWorldMessage() string {
	return "hello world"
}
