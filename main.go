package main

import (
	"os"
	"os/signal"

	"github.com/patrikhermansson/lpmetric/cmd"
	"github.com/rs/zerolog/log"
)

// main is the entry point of the application.
// Logging levels are configured by the core package from the DEBUG_LPMETRIC
// environment variable. A goroutine listens for interrupt signals so the
// program can exit immediately during long computations.
func main() {

	// This block sets up a go routine to listen for an interrupt signal which will immediately exit the program
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	// Program entry point
	cmd.Execute()
}

// listenForInterrupt listens for an interrupt signal and exits the program when it is received.
// It takes a channel of os.Signal as a parameter.
func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("Interrupt signal received. Exiting...")
}
