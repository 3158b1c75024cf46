package dto

// NumberResponse carries a freshly allocated unique number.
type NumberResponse struct {
	Number int `json:"number"`
}
