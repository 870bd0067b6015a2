package main

import (
	"fmt"
	"os"

	"github.com/cookpit/cookpit/cmd"
)

func main() {
	if err := cmd.RunDaemon(); err != nil {
		fmt.Println("cookpitd:", err.Error())
		os.Exit(1)
	}
}
