package contextkeys

type contextKey string

const (
	UserIDKey   contextKey = "UserID"
	UsernameKey contextKey = "Username"
	PerfilKey   contextKey = "Perfil"
)
