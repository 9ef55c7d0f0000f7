/*
Copyright 2024 Tim St. Pierre
Options from an HCL file
*/
package lcm1602

import (
	"os"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
)

// FileOpts is the on-disk form of Opts:
//
//	address    = 0x27
//	geometry   = "20x4"
//	cursor     = true
//	blink      = false
//	font       = "5x8"
//	backlight  = true
//	timing     = "modern"
//	char_delay = "1ms"
type FileOpts struct {
	Address   int    `hcl:"address"`
	Geometry  string `hcl:"geometry"`
	Cursor    bool   `hcl:"cursor"`
	Blink     bool   `hcl:"blink"`
	Font      string `hcl:"font"`
	Backlight *bool  `hcl:"backlight"`
	Timing    string `hcl:"timing"`
	CharDelay string `hcl:"char_delay"`
}

// LoadOpts reads options from an HCL file.
func LoadOpts(path string) (*Opts, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "config path=%s", path)
	}
	opts, err := ParseOpts(b)
	if err != nil {
		return nil, errors.Annotatef(err, "config path=%s", path)
	}
	return opts, nil
}

// ParseOpts decodes HCL text. Keys left out keep the DefaultOpts value.
func ParseOpts(b []byte) (*Opts, error) {
	var f FileOpts
	if err := hcl.Unmarshal(b, &f); err != nil {
		return nil, errors.Annotate(err, "config unmarshal")
	}
	return f.Opts()
}

// Opts validates f and converts it.
func (f *FileOpts) Opts() (*Opts, error) {
	opts := DefaultOpts
	if f.Address != 0 {
		if f.Address < 0 || f.Address > 0x7f {
			return nil, errors.NotValidf("address=%#x", f.Address)
		}
		opts.I2CAddr = uint16(f.Address)
		if _, err := opts.i2cAddr(); err != nil {
			return nil, errors.NewNotValid(err, "address")
		}
	}
	if f.Geometry != "" {
		g, err := ParseGeometry(f.Geometry)
		if err != nil {
			return nil, errors.NewNotValid(err, "geometry")
		}
		opts.Geometry = g
	}
	opts.Cursor = f.Cursor
	opts.Blink = f.Blink
	font, ok := FontByName(f.Font)
	if !ok {
		return nil, errors.NotValidf("font=%q", f.Font)
	}
	opts.Font = font
	if f.Backlight != nil {
		opts.BacklightOff = !*f.Backlight
	}
	t, ok := TimingByName(f.Timing)
	if !ok {
		return nil, errors.NotValidf("timing=%q", f.Timing)
	}
	opts.Timing = t
	if f.CharDelay != "" {
		d, err := time.ParseDuration(f.CharDelay)
		if err != nil {
			return nil, errors.NewNotValid(err, "char_delay")
		}
		opts.CharDelay = d
	}
	return &opts, nil
}
