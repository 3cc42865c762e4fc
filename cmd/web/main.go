package main

import (
	"stagelink_backend/internal/app"
)

func main() {
	app.Run()
}
