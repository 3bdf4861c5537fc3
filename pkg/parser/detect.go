// Package parser reads facial landmark annotation files. Two on-disk
// dialects are supported: the IMM database's ASF files, which carry
// image-normalized coordinates, and the iBug databases' PTS files,
// which carry 1-based pixel coordinates.
package parser

import (
	"github.com/menta2k/landmark-dataset/internal/utils"
)

// Format identifies a landmark annotation dialect.
type Format int

const (
	FormatUnknown Format = iota
	FormatIMM
	FormatIBUG
)

// Extension returns the landmark file extension (without dot) for the
// format, or an empty string for FormatUnknown.
func (f Format) Extension() string {
	switch f {
	case FormatIMM:
		return "asf"
	case FormatIBUG:
		return "pts"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case FormatIMM:
		return "IMM"
	case FormatIBUG:
		return "iBug"
	default:
		return "unknown"
	}
}

// DetectFormat probes a dataset directory for annotation files. ASF
// takes priority over PTS when both are present; a directory with
// neither is FormatUnknown.
func DetectFormat(dir string) Format {
	if utils.HasFilesWithExtension(dir, "asf") {
		return FormatIMM
	}
	if utils.HasFilesWithExtension(dir, "pts") {
		return FormatIBUG
	}
	return FormatUnknown
}
