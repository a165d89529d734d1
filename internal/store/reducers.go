package store

import "taskctl/internal/service"

// AuthState is the session. Empty User and Error mean absent.
type AuthState struct {
	User            string
	IsAuthenticated bool
	Loading         bool
	Error           string
}

// TaskState holds the task collection in server order and the selected task.
// Loading is shared by all task operations.
type TaskState struct {
	Tasks    []service.Task
	Selected *service.Task
	Loading  bool
	Error    string

	// Seq of the most recently started fetch of each kind.
	fetchAllSeq  uint64
	fetchByIDSeq uint64
}

// State is the root state.
type State struct {
	Auth  AuthState
	Tasks TaskState
}

// InitialState returns the state at process start.
func InitialState(authenticated bool) State {
	return State{Auth: AuthState{IsAuthenticated: authenticated}}
}

// Reduce folds one action into the root state. It never mutates s.
func Reduce(s State, a Action) State {
	return State{
		Auth:  ReduceAuth(s.Auth, a),
		Tasks: ReduceTasks(s.Tasks, a),
	}
}

// ReduceAuth folds one action into the session.
func ReduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case Pending:
		if a.Op.auth() {
			s.Loading = true
			s.Error = ""
		}
	case Rejected:
		if a.Op.auth() {
			s.Loading = false
			s.Error = a.Message
		}
	case LoginFulfilled:
		s.Loading = false
		s.IsAuthenticated = true
		s.User = a.Response.Username
	case SignupFulfilled:
		s.Loading = false
	case LoggedOut:
		s.User = ""
		s.IsAuthenticated = false
	case SessionExpired:
		s.User = ""
		s.IsAuthenticated = false
		s.Error = "session expired"
	case AuthErrorCleared:
		s.Error = ""
	}
	return s
}

// ReduceTasks folds one action into the task slice. The returned Tasks
// slice never shares writes with the input.
func ReduceTasks(s TaskState, a Action) TaskState {
	switch a := a.(type) {
	case Pending:
		if !a.Op.tasks() {
			return s
		}
		s.Loading = true
		s.Error = ""
		switch a.Op {
		case OpFetchAll:
			s.fetchAllSeq = a.Seq
		case OpFetchByID:
			s.fetchByIDSeq = a.Seq
		}

	case Rejected:
		if !a.Op.tasks() || s.superseded(a.Op, a.Seq) {
			return s
		}
		s.Loading = false
		s.Error = a.Message

	case TasksFetched:
		if s.superseded(OpFetchAll, a.Seq) {
			return s
		}
		s.Loading = false
		s.Tasks = append([]service.Task(nil), a.Tasks...)

	case TasksHydrated:
		s.Tasks = cloneTasks(a.Tasks)

	case TaskFetched:
		if s.superseded(OpFetchByID, a.Seq) {
			return s
		}
		s.Loading = false
		task := a.Task
		s.Selected = &task

	case TaskCreated:
		s.Loading = false
		tasks := make([]service.Task, len(s.Tasks), len(s.Tasks)+1)
		copy(tasks, s.Tasks)
		s.Tasks = append(tasks, a.Task)

	case TaskUpdated:
		s.Loading = false
		if a.Task.ID == nil {
			return s
		}
		if i := indexOf(s.Tasks, *a.Task.ID); i >= 0 {
			s.Tasks = cloneTasks(s.Tasks)
			s.Tasks[i] = a.Task
		}

	case TaskStatusUpdated:
		s.Loading = false
		if a.Task.ID == nil {
			return s
		}
		if i := indexOf(s.Tasks, *a.Task.ID); i >= 0 {
			s.Tasks = cloneTasks(s.Tasks)
			s.Tasks[i].Status = a.Task.Status
		}

	case TaskDeleted:
		s.Loading = false
		kept := make([]service.Task, 0, len(s.Tasks))
		for _, t := range s.Tasks {
			if !t.HasID(a.ID) {
				kept = append(kept, t)
			}
		}
		s.Tasks = kept

	case SelectedTaskSet:
		if a.Task == nil {
			s.Selected = nil
		} else {
			task := *a.Task
			s.Selected = &task
		}

	case TaskErrorCleared:
		s.Error = ""
	}
	return s
}

// superseded reports whether a fetch result belongs to a fetch that a later
// one of the same kind has replaced.
func (s TaskState) superseded(op Op, seq uint64) bool {
	switch op {
	case OpFetchAll:
		return seq < s.fetchAllSeq
	case OpFetchByID:
		return seq < s.fetchByIDSeq
	}
	return false
}

func indexOf(tasks []service.Task, id int64) int {
	for i, t := range tasks {
		if t.HasID(id) {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []service.Task) []service.Task {
	return append([]service.Task(nil), tasks...)
}
