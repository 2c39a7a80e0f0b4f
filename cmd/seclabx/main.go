package main

import (
	"runtime"

	"github.com/seclabx-org/portal/cmd"
)

func init() {
	// raylib and the fyne driver must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
