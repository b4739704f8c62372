package main

import "bookmarks/cmd/client/cmd"

func main() {
	cmd.Execute()
}
