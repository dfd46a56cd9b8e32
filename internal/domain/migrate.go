package domain

import "github.com/google/uuid"

// SkeletonTaskName is the display name of the synthetic task-000
const SkeletonTaskName = "Skeleton Deployment"

// skeletonDefinitionOfDone is the pre-flight checklist for the first
// AI coding session.
const skeletonDefinitionOfDone = `Project builds and runs without errors.
All configuration files match the chosen tech stack.
Folder structure matches the architecture layers.
A basic page/route renders correctly.
Database connection is working (if applicable).
Authentication scaffolding is in place (if applicable).
Environment variables are documented.
Git repository is initialized with a .gitignore.`

// EnsureSkeletonTask applies the one-time task-000 materialization rule:
// if at least one feature exists and no task is numbered 0, a synthetic
// "Skeleton Deployment" task is prepended. Idempotent; it is NOT re-applied
// after the user deletes task-000. Returns true when a task was added.
func EnsureSkeletonTask(s *ProjectState) bool {
	if len(s.Features) == 0 {
		return false
	}
	for _, t := range s.Tasks {
		if t.TaskNumber == 0 {
			return false
		}
	}

	skeleton := Task{
		ID:               uuid.New().String(),
		TaskNumber:       0,
		Name:             SkeletonTaskName,
		DefinitionOfDone: skeletonDefinitionOfDone,
		OutOfScope:       "Feature implementation. Only the project skeleton is in scope.",
		Status:           StatusNotStarted,
	}

	s.Tasks = append([]Task{skeleton}, s.Tasks...)
	for i := range s.Tasks {
		s.Tasks[i].SortOrder = i
	}
	return true
}

// NextTaskNumber returns the next sequential task number: one past the
// current maximum, or 1 for the first task.
func NextTaskNumber(tasks []Task) int {
	if len(tasks) == 0 {
		return 1
	}
	max := tasks[0].TaskNumber
	for _, t := range tasks[1:] {
		if t.TaskNumber > max {
			max = t.TaskNumber
		}
	}
	return max + 1
}
