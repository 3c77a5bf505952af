//go:build gpu

package main

// Register the GPU accelerator. Without it gg rasterises on the CPU.
import _ "github.com/gogpu/gg/gpu"
