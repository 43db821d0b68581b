// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ezrec/uartmon/config"
	"github.com/ezrec/uartmon/emulator"
	"github.com/ezrec/uartmon/monitor"
	"github.com/ezrec/uartmon/translate"
	"github.com/ezrec/uartmon/uart"
)

var f = translate.From

func main() {
	var profile string
	var kind string
	var device string
	var baud int
	var input string
	var output string
	var budget string
	var verbose bool

	flag.StringVar(&profile, "p", "", ".yaml profile to use")
	flag.StringVar(&kind, "t", "", "Transport: console, serial or tape")
	flag.StringVar(&device, "d", "", "Serial device")
	flag.IntVar(&baud, "b", 0, "Serial baud rate")
	flag.StringVar(&input, "i", "", "Tape input")
	flag.StringVar(&output, "o", "", "Tape output")
	flag.StringVar(&budget, "budget", "", "Ticks per cycle, as an expression of CLOCK_KHZ")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatal(f("%v: Unknown arguments: %v", os.Args[0], flag.Args()))
	}

	p := config.Default()
	if len(profile) != 0 {
		var err error
		p, err = config.Load(profile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Command line overrides the profile.
	if len(kind) != 0 {
		p.Transport.Kind = kind
	}
	if len(device) != 0 {
		p.Transport.Device = device
	}
	if baud != 0 {
		p.Transport.Baud = baud
	}
	if len(input) != 0 {
		p.Transport.Input = input
	}
	if len(output) != 0 {
		p.Transport.Output = output
	}
	if len(budget) != 0 {
		p.Monitor.Budget = budget
	}

	err := config.Validate(p)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// In console mode the terminal is raw, so Ctrl-C arrives as a byte;
	// the escape byte stands in for it.
	u, closeUART, err := uart.Build(p.Transport, stop)
	if err != nil {
		log.Fatal(err)
	}
	defer closeUART()

	emu := emulator.Build(p.Emulator, u)
	emu.Verbose = verbose

	mon := monitor.Build(emu, p.Monitor)
	mon.Verbose = verbose

	err = mon.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Print(err)
	}
}
