package main

import "github.com/samuelfneumann/gonav/examples"

func main() {
	examples.Reach()
}
