package main

import "github.com/pfrederiksen/dtu-calendar/internal/cli"

func main() {
	cli.Execute()
}
