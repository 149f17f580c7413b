/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/mandarini/astra-arcana/cmd"

func main() {
	cmd.Execute()
}
