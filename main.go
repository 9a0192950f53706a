/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ygofr/ygosync/cmd"

func main() {
	cmd.Execute()
}
