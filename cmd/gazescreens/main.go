package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/gazescreens/internal/gazescreens"
)

func main() {
	gazescreens.Debug = os.Getenv("DEBUG") != ""
	gazescreens.Parallel = os.Getenv("PARALLEL") != ""
	gazescreens.STL = os.Getenv("STL") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := gazescreens.DefaultConfig
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := gazescreens.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
