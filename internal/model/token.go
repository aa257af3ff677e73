package model

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	ParseAccessToken(token string) (int64, error)
}
