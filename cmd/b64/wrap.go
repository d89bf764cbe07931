package main

import "io"

var newline = []byte{'\n'}

// lineWriter breaks output into lines of width bytes. Every line, including
// the last partial one, ends with '\n' once Close is called. width 0 writes
// a single line.
type lineWriter struct {
	w     io.Writer
	width int
	col   int
}

func newLineWriter(w io.Writer, width int) *lineWriter {
	return &lineWriter{w: w, width: width}
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	if lw.width <= 0 {
		n, err := lw.w.Write(p)
		lw.col += n
		return n, err
	}
	n := 0
	for len(p) > 0 {
		chunk := min(lw.width-lw.col, len(p))
		m, err := lw.w.Write(p[:chunk])
		n += m
		if err != nil {
			return n, err
		}
		lw.col += chunk
		p = p[chunk:]
		if lw.col == lw.width {
			if _, err := lw.w.Write(newline); err != nil {
				return n, err
			}
			lw.col = 0
		}
	}
	return n, nil
}

func (lw *lineWriter) Close() error {
	if lw.col == 0 {
		return nil
	}
	lw.col = 0
	_, err := lw.w.Write(newline)
	return err
}
