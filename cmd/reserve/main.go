package main

import "github.com/example/spothopper-reserve/cmd"

func main() {
	cmd.Execute()
}
