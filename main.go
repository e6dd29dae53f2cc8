package main

import "github.com/readify/shop/cmd"

func main() {
	cmd.Start()
}
