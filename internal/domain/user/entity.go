package user

// User holds account credentials plus the single active refresh token.
// RefreshToken is empty until the first login and is overwritten on every
// successful login or refresh; there is no multi-device token set.
type User struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	RefreshToken string `json:"-"`
}
