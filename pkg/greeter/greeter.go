// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package greeter renders greeting and farewell messages and the
// wall-clock time string printed between them.
package greeter

import (
	"fmt"
	"io"
	"os"
	"time"
)

// TimeLayout is the default 24-hour zero-padded clock layout.
const TimeLayout = "15:04:05"

// Greeting returns the greeting message for the given name.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Farewell returns the farewell message for the given name.
func Farewell(name string) string {
	return fmt.Sprintf("Goodbye, %s!", name)
}

// Greeter writes greeting messages and the current time to Out.
// The zero value is not usable; construct with New.
type Greeter struct {
	Out    io.Writer
	Now    func() time.Time
	Layout string
}

// New returns a Greeter writing to out with the default clock and layout.
// A nil out falls back to standard output.
func New(out io.Writer) *Greeter {
	if out == nil {
		out = os.Stdout
	}
	return &Greeter{
		Out:    out,
		Now:    time.Now,
		Layout: TimeLayout,
	}
}

// Greet writes the greeting for name followed by a newline.
func (g *Greeter) Greet(name string) {
	fmt.Fprintln(g.Out, Greeting(name))
}

// Farewell writes the farewell for name followed by a newline.
func (g *Greeter) Farewell(name string) {
	fmt.Fprintln(g.Out, Farewell(name))
}

// CurrentTime returns the local wall-clock time formatted with the
// configured layout.
func (g *Greeter) CurrentTime() string {
	return g.Now().Format(g.Layout)
}

// Run writes the fixed sequence: greeting, current time, farewell.
func (g *Greeter) Run(greetName, farewellName string) {
	g.Greet(greetName)
	fmt.Fprintln(g.Out, g.CurrentTime())
	g.Farewell(farewellName)
}
