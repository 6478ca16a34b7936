package main

import "github.com/Artem819/StackTrack/internal/app"

func main() {
	app.Run()
}
