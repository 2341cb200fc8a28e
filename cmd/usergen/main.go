// Package main provides the usergen CLI application.
package main

import (
	"log"
	"os"

	"github.com/zierax/usergen/internal/cli"
)

func main() {
	app := cli.NewApp()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
