package main

import (
	"os"
	"runtime/debug"

	"github.com/oruchain/sendtx/cmd"
	"github.com/oruchain/sendtx/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("SENDTX CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
