package store

import (
	"context"

	"taskctl/internal/service"
)

// FetchAll replaces the collection with the server's list.
// A response that arrives after a newer FetchAll started is dropped.
func (s *Store) FetchAll(ctx context.Context) error {
	seq := s.nextSeq()
	s.Dispatch(Pending{Op: OpFetchAll, Seq: seq})

	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return s.reject(OpFetchAll, seq, err, msgFetchAll)
	}
	s.Dispatch(TasksFetched{Seq: seq, Tasks: tasks})
	return nil
}

// FetchByID loads one task into the selection. The collection is untouched.
func (s *Store) FetchByID(ctx context.Context, id int64) error {
	seq := s.nextSeq()
	s.Dispatch(Pending{Op: OpFetchByID, Seq: seq})

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return s.reject(OpFetchByID, seq, err, msgFetchByID)
	}
	s.Dispatch(TaskFetched{Seq: seq, Task: task})
	return nil
}

// Create saves a new task and appends the server's copy to the collection.
func (s *Store) Create(ctx context.Context, task service.Task) error {
	s.Dispatch(Pending{Op: OpCreate})

	created, err := s.tasks.CreateTask(ctx, task)
	if err != nil {
		return s.reject(OpCreate, 0, err, msgCreate)
	}
	s.Dispatch(TaskCreated{Task: created})
	return nil
}

// Update replaces a task. If the task is no longer in the collection the
// collection is left alone.
func (s *Store) Update(ctx context.Context, id int64, task service.Task) error {
	s.Dispatch(Pending{Op: OpUpdate})

	updated, err := s.tasks.UpdateTask(ctx, id, task)
	if err != nil {
		return s.reject(OpUpdate, 0, err, msgUpdate)
	}
	if updated.ID == nil {
		updated.ID = service.Int64(id)
	}
	s.Dispatch(TaskUpdated{Task: updated})
	return nil
}

// UpdateStatus changes the status of a task. Only the status field of the
// stored copy changes.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status service.Status) error {
	s.Dispatch(Pending{Op: OpUpdateStatus})

	updated, err := s.tasks.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		return s.reject(OpUpdateStatus, 0, err, msgUpdateStatus)
	}
	if updated.ID == nil {
		updated.ID = service.Int64(id)
	}
	s.Dispatch(TaskStatusUpdated{Task: updated})
	return nil
}

// Delete removes a task.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.Dispatch(Pending{Op: OpDelete})

	if err := s.tasks.DeleteTask(ctx, id); err != nil {
		return s.reject(OpDelete, 0, err, msgDelete)
	}
	s.Dispatch(TaskDeleted{ID: id})
	return nil
}

// Hydrate seeds the collection from a local snapshot without a network call.
func (s *Store) Hydrate(tasks []service.Task) {
	s.Dispatch(TasksHydrated{Tasks: tasks})
}

// SetSelected replaces the selected task; nil clears it.
func (s *Store) SetSelected(task *service.Task) {
	s.Dispatch(SelectedTaskSet{Task: task})
}

// ClearTaskError resets the task error.
func (s *Store) ClearTaskError() {
	s.Dispatch(TaskErrorCleared{})
}
