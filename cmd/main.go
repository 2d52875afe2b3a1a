package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/igd-tools/igdprobe/pkg/commands/root"
	"github.com/igd-tools/igdprobe/pkg/log"
)

func main() {
	ctx := context.Background()

	sigs := []os.Signal{
		os.Interrupt,
		os.Kill,
	}
	if _, isUnix := unixOS[runtime.GOOS]; isUnix {
		sigs = append(sigs, syscall.SIGINT, syscall.SIGHUP)
	}
	ctx, cancel := signal.NotifyContext(ctx, sigs...)
	defer cancel()

	ctx, cleanup, err := log.Logging(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer cleanup()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// copied from https://github.com/golang/go/blob/ebb572d82f97d19d0016a49956eb1fddc658eb76/src/go/build/syslist.go#L38
var unixOS = map[string]struct{}{
	"aix":       {},
	"android":   {},
	"darwin":    {},
	"dragonfly": {},
	"freebsd":   {},
	"hurd":      {},
	"illumos":   {},
	"ios":       {},
	"linux":     {},
	"netbsd":    {},
	"openbsd":   {},
	"solaris":   {},
}
