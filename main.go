package main

import "github.com/chrisdamba/foodinsights/cmd"

func main() {
	cmd.Execute()
}
