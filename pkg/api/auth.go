package api

// RegisterRequest представляет запрос на регистрацию полевого агента
type RegisterRequest struct {
	Username    string `json:"username"`
	AuthKeyHash string `json:"auth_key_hash"`
	PublicSalt  string `json:"public_salt"`
}

// RegisterResponse представляет ответ на регистрацию
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// GetSaltResponse возвращает public salt пользователя для деривации ключей
type GetSaltResponse struct {
	PublicSalt string `json:"public_salt"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username    string `json:"username"`
	AuthKeyHash string `json:"auth_key_hash"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}
