package task

// employeePatchFields are the only JSON fields an assignee without an
// elevated role may send in a task patch.
var employeePatchFields = map[string]bool{
	"status":      true,
	"description": true,
}

// DisallowedEmployeeFields returns the patch keys an employee may not
// change. Any hit fails the whole request; nothing is partially applied.
func DisallowedEmployeeFields(keys []string) []string {
	var disallowed []string
	for _, key := range keys {
		if !employeePatchFields[key] {
			disallowed = append(disallowed, key)
		}
	}
	return disallowed
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"title":     "title",
	"status":    "status",
	"priority":  "priority",
}

// SortColumn maps a client sort key onto a real column, defaulting to
// created_at. Callers never reach the store with an unvetted identifier.
func SortColumn(sortBy string) string {
	if column, ok := sortColumns[sortBy]; ok {
		return column
	}
	return "created_at"
}

func SortDirection(sortOrder string) string {
	if sortOrder == "asc" {
		return "ASC"
	}
	return "DESC"
}
