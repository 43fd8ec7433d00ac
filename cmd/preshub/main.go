package main

import (
	"preshub/cmd/handlers"
	"preshub/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
