package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("automaton: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
