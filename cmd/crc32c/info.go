package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hupe1980/crc32c"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report the selected engine and CPU capabilities",
		Run: func(cmd *cobra.Command, args []string) {
			// 32-bit ARM needs an explicit detect pass; everywhere else
			// cpuid populates itself at init.
			if runtime.GOARCH == "arm" {
				cpuid.DetectARM()
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "impl:               %s\n", crc32c.ImplName())
			fmt.Fprintf(w, "hardware available: %v\n", crc32c.HardwareAvailable())
			fmt.Fprintf(w, "platform:           %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "cpu:                %s\n", cpuid.CPU.BrandName)
			fmt.Fprintf(w, "sse4.2:             %v\n", cpuid.CPU.Supports(cpuid.SSE42))
			fmt.Fprintf(w, "arm crc32:          %v\n", cpuid.CPU.Supports(cpuid.CRC32))
			if v := os.Getenv(crc32c.ForceEnvVar); v != "" {
				fmt.Fprintf(w, "%s:       %q\n", crc32c.ForceEnvVar, v)
			}
		},
	}
}
