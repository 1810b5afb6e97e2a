package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-recipe2doc/internal/logger"
)

// Environment groups process-level dependencies so tests can substitute them.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger
}

func newEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    logger.New(os.Stderr, log.InfoLevel),
	}
}
