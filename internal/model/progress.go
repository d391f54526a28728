package model

type SetTaskCompletionRequest struct {
	TaskIndex  int  `json:"task_index"`
	TotalTasks int  `json:"total_tasks"`
	Completed  bool `json:"completed"`
}

type SetTaskCompletionResponse struct {
	Date           string `json:"date"`
	CompletedTasks int    `json:"completed_tasks"`
	TotalTasks     int    `json:"total_tasks"`
	AllClear       bool   `json:"all_clear"`
	Balance        int64  `json:"balance"`
}

type CompleteQuizRequest struct {
	QuizID string `json:"quiz_id"`
}

type CompleteQuizResponse struct {
	Balance int64 `json:"balance"`
}

type RecordGameRequest struct {
	GameID string `json:"game_id"`
	Reward int64  `json:"reward"`
}

type RecordGameResponse struct {
	Balance int64 `json:"balance"`
}
