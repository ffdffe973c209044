package main

import "taskboard/internal/app"

// @title Taskboard API
// @version 1.0
// @description REST backend for the three-column task board.
// @BasePath /
func main() {
	app.Run()
}
