package domain

import "time"

// EmployeeRole is the closed set of staff specialisations.
type EmployeeRole string

const (
	EmployeeStylist   EmployeeRole = "stylist"
	EmployeeTherapist EmployeeRole = "therapist"
	EmployeeManager   EmployeeRole = "manager"
)

func ParseEmployeeRole(s string) (EmployeeRole, error) {
	switch EmployeeRole(s) {
	case EmployeeStylist, EmployeeTherapist, EmployeeManager:
		return EmployeeRole(s), nil
	}
	return "", ErrInvalidRole
}

// EmployeeReview is a rated comment left for an employee.
type EmployeeReview struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}

type Employee struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone,omitempty"`
	Role      EmployeeRole     `json:"role"`
	Available bool             `json:"availability"`
	Schedule  []string         `json:"schedule"`
	Tasks     []string         `json:"tasks"`
	Reviews   []EmployeeReview `json:"reviews"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AverageRating is the mean of all review ratings, 0 without reviews.
func (e *Employee) AverageRating() float64 {
	if len(e.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range e.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(e.Reviews))
}
