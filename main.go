package main

import "github.com/frahmantamala/category/cmd"

func main() {
	cmd.Execute()
}
