package main

import "github.com/wellteklabs/drillcalc/cmd"

func main() {
	cmd.Execute()
}
