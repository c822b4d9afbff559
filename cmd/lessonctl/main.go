package main

import "github.com/sgzs6721/lessonctl/cmd/lessonctl/cmd"

func main() {
	cmd.Execute()
}
