package domain

type Tag struct {
	ID     int64 `json:"id"`
	PeepID int64 `json:"peep_id"`
	UserID int64 `json:"user_id"`
}
