// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Printer prints colored messages to a terminal. Colors are
// dropped automatically when the output is not a terminal.
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a new [Printer] writing to w, with the color
// profile detected from the environment unless set in opts.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

func (p *Printer) styled(c termenv.Color, bold bool, s string) string {
	st := p.out.String(s).Foreground(c)
	if bold {
		st = st.Bold()
	}
	return st.String()
}

// Title returns s styled as a section title.
func (p *Printer) Title(s string) string {
	return p.styled(termenv.ANSIBrightBlue, true, s)
}

// Success returns s styled as a success message.
func (p *Printer) Success(s string) string {
	return p.styled(termenv.ANSIGreen, false, s)
}

// Warn returns s styled as a warning.
func (p *Printer) Warn(s string) string {
	return p.styled(termenv.ANSIYellow, false, s)
}

// Error returns s styled as an error.
func (p *Printer) Error(s string) string {
	return p.styled(termenv.ANSIRed, true, s)
}

// Println writes the given values separated by spaces and
// followed by a newline.
func (p *Printer) Println(vs ...any) {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = fmt.Sprint(v)
	}
	fmt.Fprintln(p.out, strings.Join(strs, " "))
}
