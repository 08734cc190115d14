package responses

type CreateSession struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}
