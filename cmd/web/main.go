// @title           accura API
// @version         1.0
// @description     Receives a text message and an image from the accura Android app.
// @host            localhost:3000
// @BasePath        /

package main

import "accura_backend/internal/app"

func main() {
	app.Run()
}
