package renderer

import (
	"fmt"
	"strings"
)

// Pipeline selects how a frame is drawn.
type Pipeline int

const (
	// PipelineForward runs the pick pass, then shades every entity directly.
	PipelineForward Pipeline = iota
	// PipelineGBuffer fills the G-buffer and shows four of its targets.
	PipelineGBuffer
	// PipelineDeferred runs the pick pass, fills the G-buffer and lights it
	// with a fullscreen pass.
	PipelineDeferred
)

func (p Pipeline) String() string {
	switch p {
	case PipelineGBuffer:
		return "gbuffer"
	case PipelineDeferred:
		return "deferred"
	default:
		return "forward"
	}
}

// ParsePipeline accepts the names printed by String, case-insensitively.
func ParsePipeline(s string) (Pipeline, error) {
	switch strings.ToLower(s) {
	case "forward":
		return PipelineForward, nil
	case "gbuffer":
		return PipelineGBuffer, nil
	case "deferred":
		return PipelineDeferred, nil
	}
	return PipelineForward, fmt.Errorf("unknown pipeline %q", s)
}

// UsesPickPass reports whether the pick buffer is refreshed in this pipeline.
func (p Pipeline) UsesPickPass() bool {
	return p != PipelineGBuffer
}
