package config

// Workflow captures the pieces of the task schema that differ between
// deployments: the status set, the optional category and assignee rosters,
// and the priority range. The task service is configured with one of these
// at startup instead of hard-coding any variant.
type Workflow struct {
	Statuses        []string
	Categories      []string
	Users           []string
	PriorityMin     int
	PriorityMax     int
	PriorityDefault int
}

// DefaultWorkflow matches the original deployment's rosters.
func DefaultWorkflow() Workflow {
	return Workflow{
		Statuses:        []string{"Inactive", "Working on it", "Testing it", "Bugged", "Stuck", "Completed"},
		Categories:      nil,
		Users:           nil,
		PriorityMin:     0,
		PriorityMax:     10,
		PriorityDefault: 0,
	}
}

func loadWorkflow() Workflow {
	defaults := DefaultWorkflow()
	return Workflow{
		Statuses:        getEnvAsSlice("TASK_STATUSES", defaults.Statuses),
		Categories:      getEnvAsSlice("TASK_CATEGORIES", defaults.Categories),
		Users:           getEnvAsSlice("TASK_USERS", defaults.Users),
		PriorityMin:     getEnvAsInt("TASK_PRIORITY_MIN", defaults.PriorityMin),
		PriorityMax:     getEnvAsInt("TASK_PRIORITY_MAX", defaults.PriorityMax),
		PriorityDefault: getEnvAsInt("TASK_PRIORITY_DEFAULT", defaults.PriorityDefault),
	}
}

// DefaultStatus is the workflow state assigned to new tasks when the
// caller does not pick one.
func (w Workflow) DefaultStatus() string {
	if len(w.Statuses) == 0 {
		return ""
	}
	return w.Statuses[0]
}

func (w Workflow) ValidStatus(status string) bool {
	for _, s := range w.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidCategory accepts anything when no category roster is configured.
func (w Workflow) ValidCategory(category string) bool {
	if len(w.Categories) == 0 {
		return true
	}
	for _, c := range w.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidUser accepts anything when no assignee roster is configured.
func (w Workflow) ValidUser(user string) bool {
	if len(w.Users) == 0 {
		return true
	}
	for _, u := range w.Users {
		if u == user {
			return true
		}
	}
	return false
}

func (w Workflow) ValidPriority(priority int) bool {
	return priority >= w.PriorityMin && priority <= w.PriorityMax
}
