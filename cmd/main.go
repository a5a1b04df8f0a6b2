package main

import "github.com/m04kA/BilliardBookingService/internal/cli"

func main() {
	cli.Execute()
}
