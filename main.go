package main

import "mqttblast/cmd"

func main() {
	cmd.Execute()
}
