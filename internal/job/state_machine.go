package job

import "fmt"

// AllowTransition 定义任务状态机的允许流转关系。
// 采用“有向图”方式进行配置，后续可根据需要抽到配置中心。
var AllowTransition = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	// 终态：不允许从 COMPLETED / CANCELLED 再流转
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseStatus 校验原始字符串是否为合法状态值。
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("invalid status: %q", raw)
}

// IsTerminal COMPLETED / CANCELLED 为终态，终态任务不再接受状态变更和派单。
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// from == to 视为允许（幂等更新）。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对任务应用状态变更。
// 仅在 CanTransition 返回 true 时生效，否则返回错误且任务不被修改。
func ApplyTransition(j *Job, to Status) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}
	from := j.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid job status transition: %s -> %s", from, to)
	}
	j.Status = to
	return nil
}
