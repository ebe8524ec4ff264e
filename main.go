package main

import "github.com/shinewhite/clinic_backend/cmd"

func main() {
	cmd.Execute()
}
