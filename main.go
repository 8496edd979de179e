package main

import (
	"community-funding-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
