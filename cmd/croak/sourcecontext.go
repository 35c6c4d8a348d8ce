package main

import (
	"fmt"

	"github.com/charlievieth/strcase"
	"golang.org/x/exp/slices"
)

type sourceContextMode int

const (
	sourceContextAuto sourceContextMode = iota
	sourceContextAlways
	sourceContextNever
)

var sourceContextModeNames = []string{"auto", "always", "never"}

// Option words are matched case insensitively, "Always" works as well as
// "always".
func parseSourceContextOption(option string) (sourceContextMode, error) {
	index := slices.IndexFunc(sourceContextModeNames, func(name string) bool {
		return strcase.Compare(option, name) == 0
	})
	if index < 0 {
		return sourceContextAuto, fmt.Errorf("Valid choices are auto, always and never")
	}

	return sourceContextMode(index), nil
}
