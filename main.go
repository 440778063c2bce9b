/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/tenpin/cmd"

func main() {
	cmd.Execute()
}
