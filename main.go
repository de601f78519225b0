package main

import "github.com/radek-zitek-cloud/bumasys-beta-sub002/cmd"

func main() {
	cmd.Execute()
}
