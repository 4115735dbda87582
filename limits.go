package xml2json

import (
	"cmp"
	"fmt"

	"github.com/jacoelho/xml2json/internal/tree"
)

const (
	defaultMaxDepth      = tree.DefaultMaxDepth
	defaultMaxInputBytes = 64 << 20
)

type convertLimits struct {
	maxDepth      int
	maxInputBytes int64
}

func resolveConvertLimits(maxDepth int, maxInputBytes int64) (convertLimits, error) {
	if maxDepth < 0 {
		return convertLimits{}, fmt.Errorf("max depth must be >= 0")
	}
	if maxInputBytes < 0 {
		return convertLimits{}, fmt.Errorf("max input bytes must be >= 0")
	}
	return convertLimits{
		maxDepth:      cmp.Or(maxDepth, defaultMaxDepth),
		maxInputBytes: cmp.Or(maxInputBytes, defaultMaxInputBytes),
	}, nil
}

func (l convertLimits) tree() tree.Limits {
	return tree.Limits{MaxDepth: l.maxDepth}
}
