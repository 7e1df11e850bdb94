package main

import "school-cms/cmd/cmsctl/commands"

func main() {
	commands.Execute()
}
