package main

import "github.com/aramhealth/hms_backend/cmd"

func main() {
	cmd.Execute()
}
