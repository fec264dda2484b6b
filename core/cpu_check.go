package core

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// CPUFeatures reports the SIMD features of the host CPU that matter for
// float32 throughput. Only the flags of the running architecture are set.
func CPUFeatures() map[string]bool {
	features := map[string]bool{}
	switch runtime.GOARCH {
	case "amd64", "386":
		features["sse3"] = cpu.X86.HasSSE3
		features["avx"] = cpu.X86.HasAVX
		features["avx2"] = cpu.X86.HasAVX2
		features["fma"] = cpu.X86.HasFMA
	case "arm64":
		features["asimd"] = cpu.ARM64.HasASIMD
		features["fphp"] = cpu.ARM64.HasFPHP
	}
	return features
}
