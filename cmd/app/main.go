package main

import "licitaya-api/app"

func main() {
	app.Run()
}
