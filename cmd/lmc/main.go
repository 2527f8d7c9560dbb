// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lmc: ")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
