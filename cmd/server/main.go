package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"workspace-chat-app/config"
	"workspace-chat-app/config/common"
)

func main() {
	configFile := pflag.StringP("config", "c", common.DefaultConfigFile, "path to the env config file")
	pflag.Parse()

	if err := config.RunServer(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
