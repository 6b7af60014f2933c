package main

import "github.com/euforicio/colorwheel-go/internal/cli"

func main() { cli.Execute() }
