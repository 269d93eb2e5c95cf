package model

// UserProfile はuser-serviceが返すプロフィール。DBには保存しない。
// カート取得時にベストエフォートで付与される。
type UserProfile struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
