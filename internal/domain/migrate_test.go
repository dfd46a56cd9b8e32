package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSkeletonTask_NoFeatures(t *testing.T) {
	s := NewProjectState()

	added := EnsureSkeletonTask(s)

	assert.False(t, added)
	assert.Empty(t, s.Tasks)
}

func TestEnsureSkeletonTask_AddsTaskZeroOnce(t *testing.T) {
	s := NewProjectState()
	s.Features = []Feature{{ID: "f1", Name: "Login", Slug: "login"}}
	s.Tasks = []Task{{ID: "t1", TaskNumber: 1, Name: "Build login"}}

	added := EnsureSkeletonTask(s)

	require.True(t, added)
	require.Len(t, s.Tasks, 2)
	assert.Equal(t, 0, s.Tasks[0].TaskNumber)
	assert.Equal(t, SkeletonTaskName, s.Tasks[0].Name)
	assert.Equal(t, StatusNotStarted, s.Tasks[0].Status)
	assert.Equal(t, 0, s.Tasks[0].SortOrder)
	assert.Equal(t, 1, s.Tasks[1].SortOrder)

	// Second application is a no-op.
	assert.False(t, EnsureSkeletonTask(s))
	assert.Len(t, s.Tasks, 2)
}

func TestEnsureSkeletonTask_RespectsExistingTaskZero(t *testing.T) {
	s := NewProjectState()
	s.Features = []Feature{{ID: "f1", Name: "Login", Slug: "login"}}
	s.Tasks = []Task{{ID: "t0", TaskNumber: 0, Name: "Custom bootstrap"}}

	assert.False(t, EnsureSkeletonTask(s))
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "Custom bootstrap", s.Tasks[0].Name)
}

func TestNextTaskNumber(t *testing.T) {
	assert.Equal(t, 1, NextTaskNumber(nil))
	assert.Equal(t, 8, NextTaskNumber([]Task{
		{TaskNumber: 3}, {TaskNumber: 7}, {TaskNumber: 0},
	}))
}
