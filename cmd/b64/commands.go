package main

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/b64"
)

type EncodeCmd struct {
	Alpha AlphabetFlags `embed:""`
	Wrap  int           `help:"Insert a line break every N symbols (0 disables)." default:"0"`
	File  string        `arg:"" optional:"" help:"Input file; stdin when empty or -."`
}

func (c *EncodeCmd) Run(rt *runtime) error {
	if c.Wrap < 0 {
		return usageError{fmt.Errorf("--wrap must be >= 0, got %d", c.Wrap)}
	}
	codec, err := c.Alpha.codec(false)
	if err != nil {
		return err
	}
	src, err := readInput(rt.stdin, c.File)
	if err != nil {
		return err
	}

	text := codec.Encode(src)
	w := newLineWriter(rt.stdout, c.Wrap)
	if _, err := w.Write(text); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	rt.log.Debug("encoded", b64.Fields{"in": len(src), "out": len(text), "wrap": c.Wrap})
	return nil
}

type DecodeCmd struct {
	Alpha  AlphabetFlags `embed:""`
	Strict bool          `help:"Reject non-zero trailing bits in the final group."`
	File   string        `arg:"" optional:"" help:"Input file; stdin when empty or -."`
}

func (c *DecodeCmd) Run(rt *runtime) error {
	codec, err := c.Alpha.codec(c.Strict)
	if err != nil {
		return err
	}
	src, err := readInput(rt.stdin, c.File)
	if err != nil {
		return err
	}

	out, err := codec.Decode(src)
	if err != nil {
		var ce *b64.CorruptInputError
		if errors.As(err, &ce) {
			rt.log.Info("decode failed", b64.Fields{"offset": ce.Offset, "reason": ce.Reason})
		}
		return err
	}
	if _, err := rt.stdout.Write(out); err != nil {
		return err
	}
	rt.log.Debug("decoded", b64.Fields{"in": len(src), "out": len(out), "strict": c.Strict})
	return nil
}
