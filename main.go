package main

import "github.com/StianHa02/BlurThatGuyProject/cmd"

func main() {
	cmd.Execute()
}
