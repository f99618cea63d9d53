package finpredictor

// Insight is a single AI recommendation.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Prediction is the answer to a PredictionRequest.
type Prediction struct {
	Recommendations []Insight `json:"recommendations"`
	Note            string    `json:"note,omitempty"`
}

// PredictionRequest asks for insights about a user. Portfolio and goals are
// optional context; when missing they are looked up by user id.
type PredictionRequest struct {
	UserID    string     `json:"user_id" binding:"required"`
	Portfolio *Portfolio `json:"portfolio,omitempty"`
	Goals     []Goal     `json:"goals,omitempty"`
}
