package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

type TokenDTO struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	Usuario      UsuarioDTO `json:"usuario"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UsuarioDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nome     string `json:"nome"`
	Perfil   string `json:"perfil"`
}
