// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// StandardObserver implements observability for all pipeline components.
// The pipeline must stay usable as a quiet library, so a nil observer is
// always safe to call.
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	mu            sync.Mutex
	DebugObserver *DebugObserver // set when running in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer writing JSON records to writer.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{level: level, writer: writer}
}

// StartTiming returns a function to complete timing for an operation.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]interface{}) {
	if o == nil {
		return func(bool, map[string]interface{}) {}
	}
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// Warn records a recoverable problem, such as a recognizer whose backend was
// unavailable. Warnings are emitted at Metrics level and above: isolation of
// recognizer failures must stay observable even when execution continues.
func (o *StandardObserver) Warn(component, operation string, err error, metadata map[string]interface{}) {
	if o == nil || o.level == ObservabilityOff {
		return
	}
	data := OperationData{
		Component: component,
		Operation: operation,
		Success:   false,
		Metadata:  metadata,
	}
	if err != nil {
		data.Error = err.Error()
	}
	o.write(data)
}

// LogOperation logs operation data. Metric records are only written in debug
// mode; warnings go through Warn instead.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level != ObservabilityDebug {
		return
	}
	o.write(data)
}

func (o *StandardObserver) write(data OperationData) {
	if o.writer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	json.NewEncoder(o.writer).Encode(data)
}

// OperationData is the JSON record shape shared by all components.
type OperationData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	TextLength int                    `json:"text_length,omitempty"`
	MatchCount int                    `json:"match_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
