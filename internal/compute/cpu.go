package compute

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/san-kum/odestep/internal/dynamo"
)

// ISA is the widest float64 vector extension found on the host.
type ISA uint8

const (
	Generic ISA = iota
	SSE2
	NEON
	AVX2
	AVX512
)

func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case NEON:
		return "neon"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// VectorBits is the register width of the ISA.
func (i ISA) VectorBits() int {
	switch i {
	case SSE2, NEON:
		return 128
	case AVX2:
		return 256
	case AVX512:
		return 512
	default:
		return 64
	}
}

type Features struct {
	Arch  string
	ISA   ISA
	Flags []string
}

// Detect inspects the running CPU.
func Detect() Features {
	return detect(runtime.GOARCH, cpuFlags{
		sse2:    cpu.X86.HasSSE2,
		avx:     cpu.X86.HasAVX,
		avx2:    cpu.X86.HasAVX2,
		fma:     cpu.X86.HasFMA,
		avx512f: cpu.X86.HasAVX512F,
		asimd:   cpu.ARM64.HasASIMD,
		sve:     cpu.ARM64.HasSVE,
	})
}

type cpuFlags struct {
	sse2, avx, avx2, fma, avx512f bool
	asimd, sve                    bool
}

func detect(arch string, c cpuFlags) Features {
	f := Features{Arch: arch, ISA: Generic}

	switch arch {
	case "amd64", "386":
		add := func(ok bool, name string) {
			if ok {
				f.Flags = append(f.Flags, name)
			}
		}
		add(c.sse2, "sse2")
		add(c.avx, "avx")
		add(c.avx2, "avx2")
		add(c.fma, "fma")
		add(c.avx512f, "avx512f")

		switch {
		case c.avx512f:
			f.ISA = AVX512
		case c.avx2:
			f.ISA = AVX2
		case c.sse2:
			f.ISA = SSE2
		}
	case "arm64":
		if c.asimd {
			f.Flags = append(f.Flags, "asimd")
			f.ISA = NEON
		}
		if c.sve {
			f.Flags = append(f.Flags, "sve")
		}
	}

	return f
}

// OpsPerLane is the number of vector operations a LaneWidth group would take
// at this ISA's register width. The generic kernels run four scalar
// operations regardless.
func (f Features) OpsPerLane() int {
	perOp := f.ISA.VectorBits() / 64
	if perOp >= dynamo.LaneWidth {
		return 1
	}
	return dynamo.LaneWidth / perOp
}

func (f Features) String() string {
	flags := "none"
	if len(f.Flags) > 0 {
		flags = strings.Join(f.Flags, ",")
	}
	return fmt.Sprintf("%s/%s (%d-bit, flags: %s)", f.Arch, f.ISA, f.ISA.VectorBits(), flags)
}
