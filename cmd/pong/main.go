package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/lifecycle"
	"github.com/tomz197/pong/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	var oldState *term.State

	// Terminal bootstrap: on any acquire failure the completed steps roll
	// back in reverse, leaving the terminal usable.
	stop, err := lifecycle.Start([]lifecycle.Resource{
		{
			Name: "raw mode",
			Acquire: func() error {
				st, err := term.MakeRaw(fd)
				oldState = st
				return err
			},
			Release: func() {
				_ = term.Restore(fd, oldState)
			},
		},
		{
			Name: "screen",
			Acquire: func() error {
				draw.HideCursor(os.Stdout)
				draw.ClearScreen(os.Stdout)
				return nil
			},
			Release: func() {
				draw.ShowCursor(os.Stdout)
				draw.ClearScreen(os.Stdout)
			},
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up terminal: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(reader, os.Stdout, loop.Options{})
	stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}
