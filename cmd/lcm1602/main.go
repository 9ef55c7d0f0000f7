/*
Copyright 2024 Tim St. Pierre
Prints text on an lcm1602 display
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tstpierre-tc/lcm1602"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func main() {
	if err := mainImpl(); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}

func mainImpl() error {
	configPath := flag.String("config", "", "HCL options file")
	busName := flag.String("bus", "", "I²C bus to use")
	addr := flag.Uint("addr", 0, "I²C address of the backpack, overrides the config file")
	geometry := flag.String("geometry", "", "display size COLSxROWS, e.g. 16x2")
	legacy := flag.Bool("legacy", false, "use the slow two frame strobe")
	row := flag.Uint("row", 0, "cursor row before printing")
	col := flag.Uint("col", 0, "cursor column before printing")
	clearFirst := flag.Bool("clear", true, "clear the display before printing")
	backlight := flag.Bool("backlight", true, "backlight on")
	cursor := flag.Bool("cursor", false, "show the cursor")
	blink := flag.Bool("blink", false, "blink the cursor")
	halt := flag.Bool("halt", false, "clear and switch off the backlight, then exit")
	verbose := flag.Bool("v", false, "verbose mode")
	var hz physic.Frequency
	flag.Var(&hz, "hz", "I²C bus speed")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := lcm1602.DefaultOpts
	if *configPath != "" {
		o, err := lcm1602.LoadOpts(*configPath)
		if err != nil {
			return err
		}
		opts = *o
	}
	if *addr != 0 {
		opts = opts.WithAddress(uint16(*addr))
	}
	if *geometry != "" {
		g, err := lcm1602.ParseGeometry(*geometry)
		if err != nil {
			return errors.Trace(err)
		}
		opts = opts.WithGeometry(g)
	}
	if *legacy {
		opts = opts.WithTiming(lcm1602.TimingLegacy)
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["backlight"] || *configPath == "" {
		opts = opts.WithBacklight(*backlight)
	}
	if set["cursor"] {
		opts = opts.WithCursor(*cursor)
	}
	if set["blink"] {
		opts = opts.WithBlink(*blink)
	}

	if _, err := host.Init(); err != nil {
		return errors.Annotate(err, "host init")
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return errors.Annotatef(err, "open bus=%q", *busName)
	}
	defer bus.Close()
	if hz != 0 {
		if err := bus.SetSpeed(hz); err != nil {
			return errors.Annotatef(err, "bus speed=%s", hz)
		}
	}

	d, err := lcm1602.NewI2C(bus, &opts)
	if err != nil {
		return errors.Annotate(err, "display init")
	}
	log.Debugf("using %s", d)
	if *halt {
		return errors.Trace(d.Halt())
	}
	if *clearFirst {
		if err := d.Clear(); err != nil {
			return errors.Trace(err)
		}
	}
	if *row != 0 || *col != 0 {
		if err := d.SetCursor(uint8(*row), uint8(*col)); err != nil {
			return errors.Trace(err)
		}
	}
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "nothing to print")
		return nil
	}
	if _, err := fmt.Fprint(d, text); err != nil {
		return errors.Trace(err)
	}
	return nil
}
