package main

import (
	"os"

	"github.com/shabbyrobe/go-bignum/cmd/bncalc/command"
	"github.com/shabbyrobe/go-bignum/internal/log"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		log.ErrorS("bncalc failed", "err", err)
		os.Exit(1)
	}
}
