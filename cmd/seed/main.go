package main

import "github.com/m04kA/SMC-TourService/cmd/seed/commands"

func main() {
	commands.Execute()
}
