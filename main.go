package main

import "github.com/pgdelta/pgdelta-go/cmd"

func main() {
	cmd.Execute()
}
