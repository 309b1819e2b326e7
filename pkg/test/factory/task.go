package factory

import (
	fab "github.com/Goldziher/fabricator"
)

// NewTask builds a task-shaped struct. Tasks come out open unless the
// caller overrides Completed.
func NewTask[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasCompleted := false

	for _, data := range customData {
		if _, exists := data["Completed"]; exists {
			hasCompleted = true
			break
		}
	}

	if !hasCompleted {
		customData = append(customData, map[string]any{
			"Completed": false,
		})
	}

	return instance.Build(customData...)
}
